package main

import (
	"fmt"
	"io"
	"log"

	"github.com/Jumpaku/go-fspath"
	"github.com/Jumpaku/go-fspath/fspathmust"
)

func main() {
	// Environment queries read the OS state at call time.
	wd := fspathmust.Getwd()
	home := fspathmust.Home()
	fmt.Println("working directory:", wd)
	fmt.Println("home directory:   ", home)

	// Manipulation is pure: every operation returns a new Path.
	p := fspath.From("/temp").JoinAll("demo", "abc.txt")
	fmt.Println("path:     ", p)
	fmt.Println("basename: ", p.Basename())
	fmt.Println("dirname:  ", p.Dirname())
	fmt.Println("extension:", fspathmust.Extension(p))
	fmt.Println("renamed:  ", p.WithBasename("xyz.txt"))
	fmt.Println("absolute: ", p.IsAbs())

	// Predicates query the live filesystem.
	fmt.Println("exists:   ", p.Exists())

	// Enumerate the working directory lazily.
	d, err := wd.ReadDir()
	if err != nil {
		log.Panic(err)
	}
	defer d.Close()
	for {
		entry, err := d.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			log.Panic(err)
		}
		kind := "file"
		if entry.IsDir() {
			kind = "dir"
		}
		fmt.Printf("%s (%s)\n", entry.Path(), kind)
	}
}
