package main

import (
	"fmt"
	"io/ioutil"
	"os"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"

	"github.com/clex-lang/clex/scanner"
	"github.com/clex-lang/clex/token"
)

type tokenRecord struct {
	Kind    string      `json:"kind"`
	Literal string      `json:"literal"`
	Value   interface{} `json:"value,omitempty"`
}

func tokenValue(tok token.Token) interface{} {
	switch tok.Kind {
	case token.INT:
		return tok.IntValue
	case token.STRING:
		return tok.StringValue
	case token.CHAR:
		return string(tok.CharValue)
	}
	return nil
}

func main() {
	format := pflag.StringP("format", "f", "text", "output format (text or json)")
	verbose := pflag.BoolP("verbose", "v", false, "enable debug logging")
	pflag.Parse()

	if *verbose {
		logrus.SetLevel(logrus.DebugLevel)
	}

	if pflag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: clex [flags] <file>")
		os.Exit(1)
	}
	path := pflag.Arg(0)

	source, err := ioutil.ReadFile(path)
	if err != nil {
		logrus.Fatal(errors.Wrap(err, "unable to read source file"))
	}

	s := scanner.New(source, path)
	var records []tokenRecord
	hadErrors := false
	for {
		tok, err := s.Next()
		if err != nil {
			lexErr := err.(*scanner.Error)
			logrus.WithField("location", lexErr.Location.String()).Error(lexErr)
			hadErrors = true
			continue
		}
		if tok.Is(token.EOF) {
			break
		}
		records = append(records, tokenRecord{
			Kind:    tok.Kind.String(),
			Literal: tok.Literal,
			Value:   tokenValue(tok),
		})
	}
	logrus.WithField("location", s.Location().String()).Debugf("scanned %v tokens", len(records))

	switch *format {
	case "json":
		buf, err := jsoniter.Marshal(records)
		if err != nil {
			logrus.Fatal(errors.Wrap(err, "unable to marshal tokens"))
		}
		fmt.Println(string(buf))
	case "text":
		for _, record := range records {
			if record.Value != nil {
				fmt.Printf("%v(%v)\n", record.Kind, record.Value)
			} else {
				fmt.Printf("%v(%v)\n", record.Kind, record.Literal)
			}
		}
	default:
		fmt.Fprintln(os.Stderr, "unsupported format: "+*format)
		os.Exit(1)
	}

	if hadErrors {
		os.Exit(1)
	}
}
