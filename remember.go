package threshold

import (
	"encoding/json"
	"fmt"
	"io/ioutil"
	"log"
	"os"
	"path/filepath"
	"time"
)

type savedSession struct {
	File  string    `json:"file"`
	Saved time.Time `json:"saved"`
}

const settingsDir = "org.frameloss.threshold"

// settingsRoot is swapped out by tests.
var settingsRoot = os.UserConfigDir

// SaveLastFile remembers the chart configuration for next start, best effort only.
func SaveLastFile(fileName string) {
	configDir, err := settingsRoot()
	if err != nil {
		log.Println(err)
		return
	}
	if abs, err := filepath.Abs(fileName); err == nil {
		fileName = abs
	}
	dirName := fmt.Sprintf("%s%c%s", configDir, os.PathSeparator, settingsDir)
	_, err = os.Stat(dirName)
	if err != nil {
		// try to create dir:
		if err = os.MkdirAll(dirName, os.FileMode(0700)); err != nil {
			log.Println(err)
			return
		}
	}
	fileBytes, _ := json.Marshal(savedSession{
		File:  fileName,
		Saved: time.Now(),
	})
	f, err := os.OpenFile(filepath.Join(dirName, "last.json"), os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
	if err != nil {
		log.Println(err)
		return
	}
	defer f.Close()
	n, err := f.Write(fileBytes)
	if err != nil {
		log.Println(err)
		return
	}
	log.Println("wrote", n, "bytes to last.json")
}

// LastFile returns the configuration saved by SaveLastFile, or "" when there is none.
func LastFile() string {
	configDir, err := settingsRoot()
	if err != nil {
		log.Println(err)
		return ""
	}
	f, err := os.Open(filepath.Join(configDir, settingsDir, "last.json"))
	if err != nil {
		if !os.IsNotExist(err) {
			log.Println(err)
		}
		return ""
	}
	defer f.Close()
	b, err := ioutil.ReadAll(f)
	if err != nil {
		log.Println(err)
		return ""
	}
	session := &savedSession{}
	if err = json.Unmarshal(b, session); err != nil {
		log.Println(err)
		return ""
	}
	return session.File
}
