package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/iov-one/weave/coin"
)

// flCoin returns a value that is being initialized with given default value
// and optionally overwritten by a command line argument if provided. This
// function follows Go's flag package convention.
// If given value cannot be deserialized to required type, process is
// terminated.
func flCoin(fl *flag.FlagSet, name, defaultVal, usage string) *coin.Coin {
	var c coin.Coin
	if defaultVal != "" {
		var err error
		c, err = coin.ParseHumanFormat(defaultVal)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Cannot parse %q weave.Coin flag value. %s", name, err)
			os.Exit(2)
		}
	}
	fl.Var(&c, name, usage)
	return &c
}

// flSeq returns a sequence encoded value. The command line argument is a
// decimal number, same as the value displayed by the orm package.
func flSeq(fl *flag.FlagSet, name, defaultVal, usage string) *[]byte {
	s := flagseq(nil)
	if defaultVal != "" {
		if err := s.Set(defaultVal); err != nil {
			fmt.Fprintf(os.Stderr, "Cannot parse %q sequence flag value. %s", name, err)
			os.Exit(2)
		}
	}
	fl.Var(&s, name, usage)
	return (*[]byte)(&s)
}

type flagseq []byte

func (s flagseq) String() string {
	n, err := fromSequence(s)
	if err != nil {
		return ""
	}
	return strconv.FormatUint(n, 10)
}

func (s *flagseq) Set(raw string) error {
	n, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("sequence value must be greater than zero")
	}
	*s = sequenceID(n)
	return nil
}
