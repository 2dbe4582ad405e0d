package cmd

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/thesixers/vibe/config"
	"github.com/thesixers/vibe/rpc"
	"github.com/thesixers/vibe/util"
)

var (
	BeforeStartFunc = config.LoadConfig

	StartFunc = runServer

	startCmd = &cobra.Command{
		Use: "start",
		Run: func(*cobra.Command, []string) {
			if BeforeStartFunc != nil {
				BeforeStartFunc()
			}
			if daemon {
				killProcess()
				cmdStart()
				return
			}
			if StartFunc != nil {
				StartFunc()
			}
		},
	}
)

func cmdStart() {
	file1name := filepath.Join(util.RootDir(), "logs", "runtime.log")
	_ = os.MkdirAll(filepath.Dir(file1name), 0755)
	file1, _ := os.OpenFile(file1name, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0755)
	ec := os.Args[0]
	str := fmt.Sprintf("%s -x", ec)
	for _, v := range os.Args[1:] {
		str += fmt.Sprintf(" %s", v)
	}
	str = strings.Replace(str, "-d", "", 1)
	cmd := StdExec(str)
	cmd.Stdout = file1
	cmd.Stderr = file1
	_ = cmd.Start()
	log.Println("Start daemon success")
}

func killProcess() {
	ec := os.Args[0]
	ec = filepath.Base(ec)
	process := fmt.Sprintf("%s -x start", ec)
	_ = KillProcess(process)
	for {
		if !ProcessIsRunning(process) {
			break
		}
		time.Sleep(100 * time.Millisecond)
	}
	log.Println("Stop daemon success")
}

// runServer serves the bridge over HTTP until a stop signal arrives.
func runServer() {
	logger := util.ZapLogger("", config.C.LogLevel(), config.C.AppName())
	addr := config.C.ServerAddr()
	if !util.AddressCanListen(addr) {
		logger.Fatalf("listen %s: address not available", addr)
	}
	server := &http.Server{Addr: addr, Handler: rpc.NewBridge(logger)}
	group := new(errgroup.Group)
	group.Go(func() error {
		logger.Infof("%s %s listening on %s", config.C.AppName(), util.Version, addr)
		err := server.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	})
	group.Go(func() error {
		util.WaitSignal()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Second*5)
		defer cancel()
		errs := []error{server.Shutdown(shutdownCtx), logger.Close()}
		util.CloseWriters()
		return util.NewGroupError(errs)
	})
	if err := group.Wait(); err != nil {
		log.Printf("server exit: %s", err.Error())
	}
}
