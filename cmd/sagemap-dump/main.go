// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	sagemap "github.com/saferwall/sagemap"
)

var (
	mmapFlag   bool
	strictFlag bool
)

func prettyPrint(buf []byte) string {
	var pretty bytes.Buffer
	if err := json.Indent(&pretty, buf, "", "\t"); err != nil {
		log.Println("JSON indent error: ", err)
		return string(buf)
	}
	return pretty.String()
}

func isDirectory(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.IsDir()
}

func dumpFile(filename string) {
	log.Printf("Processing filename %s", filename)

	m, err := sagemap.Open(filename, &sagemap.Options{
		Mmap:                mmapFlag,
		StrictUnknownAssets: strictFlag,
	})
	if err != nil {
		log.Printf("Error while opening file: %s, reason: %s", filename, err)
		return
	}
	defer m.Close()

	out, err := json.Marshal(m)
	if err != nil {
		log.Printf("Error while serialising file: %s, reason: %s", filename, err)
		return
	}
	fmt.Println(prettyPrint(out))
}

func validateFile(filename string) {
	m, err := sagemap.Open(filename, &sagemap.Options{Mmap: mmapFlag, StrictUnknownAssets: strictFlag})
	if err != nil {
		fmt.Printf("%s: parse failed: %s\n", filename, err)
		return
	}
	defer m.Close()

	raw, err := m.Write(false)
	if err != nil {
		fmt.Printf("%s: write failed: %s\n", filename, err)
		return
	}

	sum, err := m.Fingerprint()
	if err != nil {
		fmt.Printf("%s: fingerprint failed: %s\n", filename, err)
		return
	}
	fmt.Printf("%s: ok, %d bytes written, fingerprint %x\n", filename, len(raw), sum)
}

func walkAndRun(path string, fn func(string)) {
	if !isDirectory(path) {
		fn(path)
		return
	}
	var files []string
	filepath.Walk(path, func(p string, f os.FileInfo, err error) error {
		if err == nil && !f.IsDir() {
			files = append(files, p)
		}
		return nil
	})
	for _, f := range files {
		fn(f)
	}
}

func main() {
	var rootCmd = &cobra.Command{
		Use:   "sagemap-dump",
		Short: "A SAGE engine map file parser",
		Long:  "A map-file parser for C&C Generals / Battle for Middle-earth SAGE maps",
	}

	var versionCmd = &cobra.Command{
		Use:   "version",
		Short: "Print version number",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Print("You are using version 0.0.1")
		},
	}

	var dumpCmd = &cobra.Command{
		Use:   "dump",
		Short: "Dumps a map file as JSON",
		Args:  cobra.MinimumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			walkAndRun(args[0], dumpFile)
		},
	}

	var validateCmd = &cobra.Command{
		Use:   "validate",
		Short: "Parses and re-writes a map file, reporting a content fingerprint",
		Args:  cobra.MinimumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			walkAndRun(args[0], validateFile)
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&mmapFlag, "mmap", "m", false, "memory-map the input file instead of reading it fully")
	rootCmd.PersistentFlags().BoolVarP(&strictFlag, "strict", "s", false, "fail on unrecognised asset names instead of skipping them")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(dumpCmd)
	rootCmd.AddCommand(validateCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
