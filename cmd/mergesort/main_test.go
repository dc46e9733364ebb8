package main

import (
	"bytes"
	"errors"
	"testing"

	"github.com/go-test/deep"
	"github.com/sbezverk/mergesort/sort"
)

func TestRun(t *testing.T) {
	tests := []struct {
		name   string
		args   []string
		opts   options
		expect string
		fail   bool
	}{
		{
			name:   "demo sequence",
			opts:   options{to: -1},
			expect: "1 2 2 3 4 4 5 5 6\n",
		},
		{
			name:   "demo sequence buffered",
			opts:   options{to: -1, buffered: true},
			expect: "1 2 2 3 4 4 5 5 6\n",
		},
		{
			name:   "arguments",
			args:   []string{"3", "-1", "2"},
			opts:   options{to: -1},
			expect: "-1 2 3\n",
		},
		{
			name:   "range",
			args:   []string{"9", "3", "1", "7"},
			opts:   options{from: 1, to: 2},
			expect: "1 3\n",
		},
		{
			name:   "range to the end",
			args:   []string{"9", "3", "1", "7"},
			opts:   options{from: 1, to: -1},
			expect: "1 3 7\n",
		},
		{
			name: "invalid range",
			args: []string{"9", "3"},
			opts: options{from: 1, to: 0},
			fail: true,
		},
		{
			name: "not an integer",
			args: []string{"9", "x"},
			opts: options{to: -1},
			fail: true,
		},
		{
			name: "buffered with range",
			opts: options{from: 1, to: -1, buffered: true},
			fail: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			err := run(&out, tt.args, tt.opts)
			if err != nil && !tt.fail {
				t.Fatalf("supposed to succeed but fail with error: %+v", err)
			}
			if err == nil && tt.fail {
				t.Fatalf("supposed to fail but succeeded")
			}
			if diff := deep.Equal(tt.expect, out.String()); diff != nil {
				t.Errorf("%+v", diff)
			}
		})
	}
}

func TestRunInvalidRangeError(t *testing.T) {
	var out bytes.Buffer
	err := run(&out, []string{"1", "2"}, options{from: 0, to: 5})
	if !errors.Is(err, sort.ErrInvalidRange) {
		t.Fatalf("expected error %v, got %v", sort.ErrInvalidRange, err)
	}
}
