package skiplist

import (
	"fmt"
	"sync"
	"testing"
	"time"
)

type fuzzOp struct {
	typ byte
	key int
}

type fuzzRecord struct {
	index int
	op    fuzzOp
	start time.Time
	end   time.Time

	found     bool
	eraseErr  error
	completed bool
}

func FuzzListLinearizability(f *testing.F) {
	f.Add([]byte{0, 1, 1, 0, 2, 2})
	f.Add([]byte{1, 2, 3, 2, 2, 4})
	f.Add([]byte{2, 3, 5, 0, 3, 7})

	f.Fuzz(func(t *testing.T, input []byte) {
		const maxOps = 6
		ops := decodeFuzzOps(input, maxOps)
		if len(ops) == 0 {
			t.Skip()
		}

		l := newIntList()
		records := make([]*fuzzRecord, len(ops))

		var wg sync.WaitGroup
		wg.Add(len(ops))
		for i, op := range ops {
			i, op := i, op
			go func() {
				defer wg.Done()
				rec := &fuzzRecord{index: i, op: op}
				rec.start = time.Now()
				switch op.typ % 3 {
				case 0: // Insert
					insertInt(l, op.key)
				case 1: // Find
					rec.found = findInt(l, op.key) != nil
				case 2: // Erase
					rec.eraseErr = l.Erase(&intItem{key: op.key})
				}
				rec.end = time.Now()
				rec.completed = true
				records[i] = rec
			}()
		}
		wg.Wait()

		if !checkLinearizable(records) {
			t.Fatalf("non-linearizable history: %v", summarizeRecords(records))
		}
	})
}

func decodeFuzzOps(input []byte, maxOps int) []fuzzOp {
	if maxOps <= 0 {
		return nil
	}
	ops := make([]fuzzOp, 0, maxOps)
	for i := 0; i+1 < len(input) && len(ops) < maxOps; i += 2 {
		typ := input[i] % 3
		key := int(input[i+1] % 8)
		ops = append(ops, fuzzOp{typ: typ, key: key})
	}
	return ops
}

func checkLinearizable(records []*fuzzRecord) bool {
	n := len(records)
	if n == 0 {
		return true
	}

	deps := make([]uint32, n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			if !records[i].end.After(records[j].start) {
				deps[j] |= 1 << i
			}
		}
	}

	used := uint32(0)
	order := make([]*fuzzRecord, 0, n)

	var dfs func() bool
	dfs = func() bool {
		if len(order) == n {
			return validateSequential(order)
		}
		for i := 0; i < n; i++ {
			if used&(1<<i) != 0 {
				continue
			}
			if deps[i]&^used != 0 {
				continue
			}
			used |= 1 << i
			order = append(order, records[i])
			if dfs() {
				return true
			}
			order = order[:len(order)-1]
			used &^= 1 << i
		}
		return false
	}

	return dfs()
}

// validateSequential replays one candidate total order against a plain
// map[int]bool presence model. Insert is treated as idempotent at the
// presence level: inserting an already-present key is legal (the spec
// leaves duplicate-key ordering undefined, not presence), so only Find
// and Erase results are checked against the model.
func validateSequential(order []*fuzzRecord) bool {
	model := make(map[int]bool)
	for _, rec := range order {
		switch rec.op.typ % 3 {
		case 0:
			model[rec.op.key] = true
		case 1:
			if rec.found != model[rec.op.key] {
				return false
			}
		case 2:
			present := model[rec.op.key]
			gotRemoved := rec.eraseErr == nil
			if gotRemoved != present {
				return false
			}
			if present {
				model[rec.op.key] = false
			}
		}
	}
	return true
}

func summarizeRecords(records []*fuzzRecord) string {
	parts := make([]string, 0, len(records))
	for _, rec := range records {
		parts = append(parts, fmt.Sprintf("{%d %d}", rec.op.typ, rec.op.key))
	}
	return fmt.Sprintf("%v", parts)
}
