package main

import (
	"bufio"
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"runtime"

	"github.com/buildbarn/bb-storage/pkg/program"
	"github.com/buildbarn/bb-storage/pkg/util"
	"github.com/buildbarn/go-lthash/pkg/lthash"
	"github.com/kballard/go-shellquote"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const usage = "Usage: lthash state_file {add|remove} element...\n" +
	"       lthash state_file {add_from_file|remove_from_file} path\n" +
	"       lthash state_file sum [hex_prefix]\n" +
	"       lthash state_file checksum"

// readElementsFromFile reads elements from a file. Every line of the
// file is split into words according to shell quoting rules, meaning
// that elements containing whitespace can be expressed by quoting
// them. Every word is an element.
func readElementsFromFile(path string) ([][]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, util.StatusWrapf(err, "Failed to open %#v", path)
	}
	defer f.Close()

	var elements [][]byte
	scanner := bufio.NewScanner(f)
	for lineNumber := 1; scanner.Scan(); lineNumber++ {
		words, err := shellquote.Split(scanner.Text())
		if err != nil {
			return nil, status.Errorf(codes.InvalidArgument, "Line %d of %#v: %s", lineNumber, path, err)
		}
		for _, word := range words {
			elements = append(elements, []byte(word))
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, util.StatusWrapf(err, "Failed to read %#v", path)
	}
	return elements, nil
}

// run executes a single command against the state stored at
// statePath. Output of commands that print a digest is written to
// stdout.
func run(ctx context.Context, statePath, command string, arguments []string, stdout io.Writer) error {
	// Load the existing state. A missing state file corresponds to
	// the empty set.
	hasher := lthash.NewHasher16()
	if state, err := os.ReadFile(statePath); err == nil {
		hasher.SetState(state)
	} else if !errors.Is(err, fs.ErrNotExist) {
		return util.StatusWrapf(err, "Failed to read state from %#v", statePath)
	}

	switch command {
	case "add":
		for _, argument := range arguments {
			hasher.Add([]byte(argument))
		}
	case "remove":
		for _, argument := range arguments {
			hasher.Remove([]byte(argument))
		}
	case "add_from_file", "remove_from_file":
		if len(arguments) != 1 {
			return status.Error(codes.InvalidArgument, usage)
		}
		elements, err := readElementsFromFile(arguments[0])
		if err != nil {
			return err
		}
		batch, err := lthash.AddAllParallel(ctx, lthash.ReferenceConfiguration, elements, runtime.NumCPU())
		if err != nil {
			return util.StatusWrap(err, "Failed to hash elements")
		}
		if command == "add_from_file" {
			err = hasher.Combine(batch)
		} else {
			err = hasher.Subtract(batch)
		}
		if err != nil {
			return err
		}
	case "sum":
		if len(arguments) > 1 {
			return status.Error(codes.InvalidArgument, usage)
		}
		var prefix []byte
		if len(arguments) == 1 {
			var err error
			prefix, err = hex.DecodeString(arguments[0])
			if err != nil {
				return util.StatusWrapWithCode(err, codes.InvalidArgument, "Invalid prefix")
			}
		}
		_, err := fmt.Fprintln(stdout, hex.EncodeToString(hasher.Sum(prefix)))
		return err
	case "checksum":
		if len(arguments) != 0 {
			return status.Error(codes.InvalidArgument, usage)
		}
		checksum := hasher.Checksum()
		_, err := fmt.Fprintln(stdout, hex.EncodeToString(checksum[:]))
		return err
	default:
		return status.Errorf(codes.InvalidArgument, "Unknown command %#v", command)
	}

	if err := os.WriteFile(statePath, hasher.Sum(nil), 0o644); err != nil {
		return util.StatusWrapf(err, "Failed to write state to %#v", statePath)
	}
	return nil
}

func main() {
	program.RunMain(func(ctx context.Context, siblingsGroup, dependenciesGroup program.Group) error {
		if len(os.Args) < 3 {
			return status.Error(codes.InvalidArgument, usage)
		}
		return run(ctx, os.Args[1], os.Args[2], os.Args[3:], os.Stdout)
	})
}
