package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path"
	"strconv"
	"strings"

	"github.com/golang/glog"
	"github.com/sbezverk/mergesort/sort"
)

var demo = []int{4, 6, 2, 3, 4, 5, 1, 2, 5}

type options struct {
	from     int
	to       int
	buffered bool
}

func main() {
	var opts options
	flag.IntVar(&opts.from, "from", 0, "first index of the range to sort")
	flag.IntVar(&opts.to, "to", -1, "last index of the range to sort, -1 for the last element")
	flag.BoolVar(&opts.buffered, "buffered", false, "sort the whole input bottom-up with a single scratch buffer")
	flag.Usage = usage
	flag.Parse()

	err := run(os.Stdout, flag.Args(), opts)
	if err != nil {
		glog.Errorf("%+v", err)
		fmt.Fprintf(os.Stderr, "%v\n", err)
	}
	glog.Flush()
	if err != nil {
		os.Exit(1)
	}
}

func run(w io.Writer, args []string, opts options) error {
	input, err := parse(args)
	if err != nil {
		return err
	}
	glog.V(5).Infof("input: %v", input)
	var sorted []int
	switch {
	case opts.buffered:
		if opts.from != 0 || opts.to != -1 {
			return errors.New("-buffered sorts the whole input and cannot be combined with -from or -to")
		}
		sorted = sort.SortBuffered(input)
	case opts.from == 0 && opts.to == -1:
		sorted = sort.SortAll(input)
	default:
		to := opts.to
		if to == -1 {
			to = len(input) - 1
		}
		if sorted, err = sort.Sort(input, opts.from, to); err != nil {
			return err
		}
	}
	_, err = fmt.Fprintln(w, format(sorted))

	return err
}

// parse converts the arguments to integers, no arguments results in the demo sequence.
func parse(args []string) ([]int, error) {
	if len(args) == 0 {
		return append([]int(nil), demo...), nil
	}
	s := make([]int, len(args))
	for i, a := range args {
		v, err := strconv.Atoi(a)
		if err != nil {
			return nil, fmt.Errorf("argument %d %q is not an integer: %w", i, a, err)
		}
		s[i] = v
	}

	return s, nil
}

func format(s []int) string {
	f := make([]string, len(s))
	for i, v := range s {
		f[i] = strconv.Itoa(v)
	}
	return strings.Join(f, " ")
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: %s [options] [integer...]\n", path.Base(os.Args[0]))
	fmt.Fprintf(os.Stderr, "\twithout integers the sequence %s is sorted\n", format(demo))
	flag.PrintDefaults()
}
