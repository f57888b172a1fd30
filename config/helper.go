package config

import (
	"fmt"
	"io/ioutil"
	"os"
	"path"

	"github.com/mitchellh/go-homedir"
	"gopkg.in/yaml.v2"
)

// mustGetConfigHomeDir returns the full path to the home directory that stores all config files.
// Uses global variable.
func mustGetConfigHomeDir() string {
	if sparkifyHomeDir == "" {
		// Find home directory.
		home, err := homedir.Dir()
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		// Save global: construct the config dir.
		sparkifyHomeDir = path.Join(home, MainDir)
	}
	return sparkifyHomeDir
}

// makeDir will make the given directory if it does not already exist.
// If it exists then return nil.
// An error is returned if there is a problem creating the dir.
func makeDir(dir string) error {
	// Test if config dir exists.
	_, err := os.Stat(dir)
	if os.IsNotExist(err) { // if it doesn't exist...
		// Create the directory.
		if err = os.Mkdir(dir, 0755); err != nil { // if the dir was NOT created...
			return fmt.Errorf("error creating directory %v", dir)
		}
	} else if err != nil && !os.IsNotExist(err) { // if there was an error getting status...
		return err
	}
	return nil
}

// loadData reads the config file from disk into c.data.
// A missing file produces FileNotFoundError so callers can create it on first Set.
func (c *File) loadData() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	b, err := ioutil.ReadFile(c.FullPath)
	if err != nil {
		if os.IsNotExist(err) { // if the file hasn't been created yet...
			return FileNotFoundError{name: c.FullPath}
		}
		return err
	}
	err = yaml.Unmarshal(b, c.data)
	if err != nil {
		return err
	}
	c.dataIsLoaded = true
	return nil
}

// saveData writes the marshalled config to disk, creating the config dir on first use.
func (c *File) saveData(b []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := makeDir(c.Dirname); err != nil {
		return err
	}
	if err := ioutil.WriteFile(c.FullPath, b, 0600); err != nil {
		return fmt.Errorf("error writing config file %v: %v", c.FullPath, err)
	}
	return nil
}
