package cmd

import (
	"bytes"
	"fmt"
	"log"
	"os/exec"
	"strings"
)

// FindPidSliceByProcessName get a pid list
func FindPidSliceByProcessName(name string) []string {
	str := `ps -ef|grep -v grep|grep '{name}'|awk '{print $2}'|tr -s '\n'`
	p, _ := StdExec(strings.Replace(str, "{name}", name, -1)).Output()
	ps := strings.Split(string(bytes.TrimSpace(p)), "\n")
	return ps
}

// KillProcess ...kill process
func KillProcess(name string) (err error) {
	if !ProcessIsRunning(name) {
		return fmt.Errorf("process[%s] is not running", name)
	}
	ps := FindPidSliceByProcessName(name)
	for _, pid := range ps {
		KillProcessByPID(pid)
	}
	return
}

func KillProcessByPID(pid string) {
	execStr := fmt.Sprintf("kill %s", pid)
	log.Printf("kill process: %s", execStr)
	_ = StdExec(execStr).Run()
}

// ProcessIsRunning is running
func ProcessIsRunning(name string) bool {
	ps := FindPidSliceByProcessName(name)
	return len(ps) > 0 && len(ps[0]) > 0
}

func StdExec(script string) *exec.Cmd {
	return exec.Command("/bin/sh", "-c", script)
}
