package lthash

import (
	"context"

	"github.com/buildbarn/bb-storage/pkg/util"

	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// AddAllParallel computes the hash of a set of elements, distributing
// the work across a number of goroutines. Each goroutine accumulates a
// subset of the elements into a Hasher of its own, after which these
// Hashers are combined. The result is identical to adding all elements
// to a single Hasher.
func AddAllParallel(ctx context.Context, configuration Configuration, elements [][]byte, parallelism int) (*Hasher, error) {
	if parallelism < 1 {
		return nil, status.Errorf(codes.InvalidArgument, "Parallelism must be positive, while %d was provided", parallelism)
	}
	result, err := NewHasher(configuration)
	if err != nil {
		return nil, err
	}
	if parallelism > len(elements) {
		parallelism = len(elements)
	}

	partials := make([]*Hasher, parallelism)
	group, groupCtx := errgroup.WithContext(ctx)
	for worker := range partials {
		partial := result.Clone()
		partials[worker] = partial
		group.Go(func() error {
			for i := worker; i < len(elements); i += parallelism {
				if err := util.StatusFromContext(groupCtx); err != nil {
					return err
				}
				partial.Add(elements[i])
			}
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}

	for _, partial := range partials {
		if err := result.Combine(partial); err != nil {
			return nil, err
		}
	}
	return result, nil
}
