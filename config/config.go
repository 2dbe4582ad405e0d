package config

import (
	"log"
	"os"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"

	"github.com/thesixers/vibe/util"
)

var C = new(Config)

var globalDefaults = map[string]interface{}{
	"app.name":      util.AppName,
	"app.debug":     true,
	"app.log_level": "debug",

	"server.addr":  "127.0.0.1:8200",
	"server.debug": true,
}

type Config struct {
	v *viper.Viper

	configFile string

	mutex sync.RWMutex

	BeforeLoad func(v *viper.Viper)
}

// AppDebug return bool value
func (c *Config) AppDebug() bool {
	return c.v.GetBool("app.debug")
}

// AppName ......
func (c *Config) AppName() string {
	appName := c.v.GetString("app.name")
	if appName == "" {
		appName = util.AppName
	}
	return appName
}

// GetConfigFile ......
func (c *Config) GetConfigFile() string {
	if c.configFile == "" {
		c.configFile = filepath.Join(util.RootDir(), "conf.toml")
	}
	return c.configFile
}

func (c *Config) Load() { c.constructor() }

// LogLevel ......
func (c *Config) LogLevel() string {
	return c.v.GetString("app.log_level")
}

// ServerAddr ......
func (c *Config) ServerAddr() string {
	return c.v.GetString("server.addr")
}

// SetConfigFile ......
func (c *Config) SetConfigFile(f string) { c.configFile = f }

// SetValue ...
func (c *Config) SetValue(k string, val interface{}) {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	c.v.Set(k, val)
}

// constructor ......
func (c *Config) constructor() *Config {
	if e := c.load(); e != nil {
		log.Fatalf("load config file error: %s", e.Error())
	}
	return c
}

// load ......
func (c *Config) load() (err error) {
	c.v = viper.New()
	func(v *viper.Viper) {
		f := c.GetConfigFile()
		log.Printf("load config file: %s\n", f)
		v.SetConfigFile(f)
		for k, v1 := range globalDefaults {
			v.SetDefault(k, v1)
		}

		if c.BeforeLoad != nil {
			c.BeforeLoad(v)
		}

		if err = c.writeDefaultConfigIfNotExists(); err != nil {
			return
		}

		if err = v.ReadInConfig(); err != nil {
			return
		}

		v.OnConfigChange(func(event fsnotify.Event) {
			log.Printf("config file changed: %s", event.Name)
		})
		v.WatchConfig()
	}(c.v)
	return
}

// writeDefaultConfigIfNotExists ......
func (c *Config) writeDefaultConfigIfNotExists() error {
	f := c.GetConfigFile()
	_, e := os.Stat(f)
	if os.IsNotExist(e) {
		_ = os.MkdirAll(filepath.Dir(f), os.ModePerm)
		return c.v.WriteConfig()
	}
	return e
}

func MergeGlobalDefaults(m map[string]interface{}) {
	for k, v := range m {
		globalDefaults[k] = v
	}
}

func Viper() *viper.Viper { return C.v }
