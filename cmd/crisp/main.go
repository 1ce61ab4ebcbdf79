package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"
	"gopkg.in/yaml.v3"

	"github.com/crisp-lang/crisp"
)

type config struct {
	Prompt  string `yaml:"prompt"`
	History string `yaml:"history"`
}

func loadConfig() config {
	cfg := config{Prompt: ">> "}

	home, err := os.UserHomeDir()
	if err == nil {
		cfg.History = filepath.Join(home, ".crisp_history")

		if data, err := os.ReadFile(filepath.Join(home, ".crisp.yaml")); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				fmt.Fprintf(os.Stderr, "ignoring ~/.crisp.yaml: %v\n", err)
			}
		}
	}

	return cfg
}

func main() {
	switch len(os.Args) {
	case 1:
		repl()
	case 2:
		runFile(os.Args[1])
	default:
		fmt.Fprintf(os.Stderr, "usage: %s [path to file]\n", os.Args[0])
		os.Exit(-1)
	}
}

func runFile(path string) {
	f, err := os.Open(path)
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()

	exprs, err := crisp.Parse(f)
	if err != nil {
		log.Fatalf("error parsing %s: %v", path, err)
	}

	ctx := crisp.NewContext()
	for _, x := range exprs {
		v, err := ctx.Eval(x)
		if err != nil {
			log.Fatalf("error: %v", err)
		}
		if v != nil {
			fmt.Println(crisp.EncodeToString(v))
		}
	}
}

func repl() {
	cfg := loadConfig()

	line := liner.NewLiner()
	defer line.Close()
	line.SetCtrlCAborts(true)

	if cfg.History != "" {
		if f, err := os.Open(cfg.History); err == nil {
			line.ReadHistory(f)
			f.Close()
		}
	}

	ctx := crisp.NewContext()
	for {
		src, err := line.Prompt(cfg.Prompt)
		if err == liner.ErrPromptAborted || err == io.EOF {
			break
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "error reading line: %v\n", err)
			break
		}
		if strings.TrimSpace(src) == "" {
			continue
		}
		line.AppendHistory(src)

		// A failed form keeps the session and its bindings; results
		// committed before the failure still print.
		results, err := ctx.EvalString(src)
		for _, v := range results {
			if v != nil {
				fmt.Println(crisp.EncodeToString(v))
			}
		}
		if err != nil {
			fmt.Printf("error: %v\n", err)
		}
	}

	if cfg.History != "" {
		if f, err := os.Create(cfg.History); err == nil {
			line.WriteHistory(f)
			f.Close()
		}
	}
}
