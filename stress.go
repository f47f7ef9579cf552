// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"time"

	"github.com/schollz/progressbar/v3"

	"github.com/cybrota/avlmap/avl"
)

const (
	OrderRandom     = "random"
	OrderAscending  = "ascending"
	OrderDescending = "descending"
)

var (
	ErrUnknownOrder = errors.New("unknown insertion order")
	ErrHeightBound  = errors.New("tree height exceeds the AVL bound")
)

type StressOptions struct {
	Count         int
	Seed          uint64
	Order         string
	ValidateEvery int
	ShowProgress  bool
	Out           io.Writer
}

type StressReport struct {
	Order       string
	Upserts     int
	Entries     int
	Height      int
	Bound       int
	Elapsed     time.Duration
	Validations int
}

func (r *StressReport) String() string {
	return fmt.Sprintf("order=%s upserts=%d entries=%d height=%d bound=%d validations=%d elapsed=%s",
		r.Order, r.Upserts, r.Entries, r.Height, r.Bound, r.Validations, r.Elapsed.Round(time.Millisecond))
}

// stressKeys returns the insertion sequence. Random sequences draw from a
// range four times the count, so they contain repeated keys.
func stressKeys(order string, count int, seed uint64) ([]int, error) {
	keys := make([]int, count)
	switch order {
	case OrderRandom:
		rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
		for i := range keys {
			keys[i] = rng.IntN(4*count) - 2*count
		}
	case OrderAscending:
		for i := range keys {
			keys[i] = i
		}
	case OrderDescending:
		for i := range keys {
			keys[i] = count - i
		}
	default:
		return nil, fmt.Errorf("%w %q (want %s, %s or %s)", ErrUnknownOrder, order, OrderRandom, OrderAscending, OrderDescending)
	}
	return keys, nil
}

// Stress upserts a generated key sequence and checks every invariant of the
// tree as it goes. It fails on the first violation.
func Stress(opts StressOptions) (*StressReport, error) {
	if opts.Count < 0 {
		return nil, fmt.Errorf("count must not be negative, got %d", opts.Count)
	}
	keys, err := stressKeys(opts.Order, opts.Count, opts.Seed)
	if err != nil {
		return nil, err
	}
	if opts.ValidateEvery <= 0 {
		opts.ValidateEvery = opts.Count + 1
	}

	var bar *progressbar.ProgressBar
	if opts.ShowProgress && opts.Out != nil {
		bar = progressbar.NewOptions(len(keys),
			progressbar.OptionSetWriter(opts.Out),
			progressbar.OptionSetDescription("🌳 Upserting keys..."),
			progressbar.OptionSetWidth(50),
			progressbar.OptionShowCount(),
			progressbar.OptionSetTheme(progressbar.Theme{
				Saucer:        "█",
				SaucerHead:    "█",
				SaucerPadding: " ",
				BarStart:      "[",
				BarEnd:        "]",
			}),
			progressbar.OptionOnCompletion(func() {
				fmt.Fprintln(opts.Out)
			}),
		)
	}

	report := &StressReport{Order: opts.Order}
	tree := avl.New[int]()
	start := time.Now()

	for i, key := range keys {
		tree.Upsert(key, i)
		report.Upserts++

		if (i+1)%opts.ValidateEvery == 0 {
			report.Validations++
			if err := checkTree(tree); err != nil {
				return report, fmt.Errorf("step %d (key %d): %w", i+1, key, err)
			}
		}
		if bar != nil {
			_ = bar.Add(1)
		}
	}
	if bar != nil {
		_ = bar.Finish()
	}

	report.Validations++
	if err := checkTree(tree); err != nil {
		return report, fmt.Errorf("after %d upserts: %w", len(keys), err)
	}

	report.Elapsed = time.Since(start)
	report.Entries = tree.Len()
	report.Height = tree.Height()
	report.Bound = avl.MaxHeight(tree.Len())
	return report, nil
}

func checkTree(tree *avl.Tree[int]) error {
	if err := tree.Validate(); err != nil {
		return err
	}
	if h, bound := tree.Height(), avl.MaxHeight(tree.Len()); h > bound {
		return fmt.Errorf("%w: height %d, bound %d for %d entries", ErrHeightBound, h, bound, tree.Len())
	}
	return nil
}
