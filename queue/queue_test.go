package queue

import (
	"fmt"
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/schedq/model/task"
)

// assertInvariants verifies heap order and heap/index consistency in both
// directions.
func assertInvariants(t *testing.T, q *Queue) {
	t.Helper()
	require.Equal(t, len(q.heap), len(q.pos), "heap and index must have the same cardinality")
	for i, item := range q.heap {
		slot, ok := q.pos[item.ID]
		require.True(t, ok, "id %v missing from index", item.ID)
		require.Equal(t, i, slot, "index entry for %v out of sync", item.ID)

		if left := 2*i + 1; left < len(q.heap) {
			require.False(t, higherPriority(q.heap[left], item), "left child %v outranks parent %v", q.heap[left].ID, item.ID)
		}
		if right := 2*i + 2; right < len(q.heap) {
			require.False(t, higherPriority(q.heap[right], item), "right child %v outranks parent %v", q.heap[right].ID, item.ID)
		}
	}
}

func TestQueue_InsertExtractOrder(t *testing.T) {
	testCases := []struct {
		name     string
		tasks    []task.Task
		expected []string
	}{
		{
			name: "distinct priorities",
			tasks: []task.Task{
				task.New("A", 3, 0),
				task.New("B", 10, 1),
				task.New("C", 5, 1),
				task.New("E", 1, 3),
			},
			expected: []string{"B", "C", "A", "E"},
		},
		{
			name: "priority tie broken by arrival",
			tasks: []task.Task{
				task.New("X", 7, 5),
				task.New("Y", 7, 2),
			},
			expected: []string{"Y", "X"},
		},
		{
			name: "priority and arrival tie broken by id",
			tasks: []task.Task{
				task.New("D", 10, 2),
				task.New("B", 10, 2),
				task.New("C", 10, 2),
			},
			expected: []string{"B", "C", "D"},
		},
		{
			name:     "single element",
			tasks:    []task.Task{task.New("only", 1, 0)},
			expected: []string{"only"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			q := New()
			for _, item := range tc.tasks {
				require.NoError(t, q.Insert(item))
				assertInvariants(t, q)
			}
			require.Equal(t, len(tc.tasks), q.Size())

			var extracted []string
			for !q.IsEmpty() {
				top, err := q.ExtractMax()
				require.NoError(t, err)
				extracted = append(extracted, top.ID)
				assertInvariants(t, q)
			}
			assert.Equal(t, tc.expected, extracted)
			assert.Equal(t, 0, q.Size())
		})
	}
}

func TestQueue_ExtractionIsNonIncreasing(t *testing.T) {
	rnd := rand.New(rand.NewSource(42))
	q := New()
	for i := 0; i < 200; i++ {
		item := task.New(fmt.Sprintf("task-%03d", i), rnd.Intn(20), rnd.Intn(10))
		require.NoError(t, q.Insert(item))
	}
	assertInvariants(t, q)

	prev, err := q.ExtractMax()
	require.NoError(t, err)
	for !q.IsEmpty() {
		next, err := q.ExtractMax()
		require.NoError(t, err)
		assert.False(t, higherPriority(next, prev), "%v extracted after %v", next, prev)
		assertInvariants(t, q)
		prev = next
	}
}

func TestQueue_DeterministicAcrossRuns(t *testing.T) {
	build := func() []string {
		q := New()
		for _, item := range []task.Task{
			task.New("b", 5, 1),
			task.New("a", 5, 1),
			task.New("d", 5, 0),
			task.New("c", 9, 3),
		} {
			require.NoError(t, q.Insert(item))
		}
		var order []string
		for !q.IsEmpty() {
			top, err := q.ExtractMax()
			require.NoError(t, err)
			order = append(order, top.ID)
		}
		return order
	}
	first := build()
	second := build()
	assert.Equal(t, first, second)
	assert.Equal(t, []string{"c", "d", "a", "b"}, first)
}

func TestQueue_PeekMax(t *testing.T) {
	q := New()
	_, err := q.PeekMax()
	assert.ErrorIs(t, err, ErrEmptyQueue)

	require.NoError(t, q.Insert(task.New("low", 1, 0)))
	require.NoError(t, q.Insert(task.New("high", 9, 0)))

	top, err := q.PeekMax()
	require.NoError(t, err)
	assert.Equal(t, "high", top.ID)
	assert.Equal(t, 2, q.Size(), "peek must not remove")
	assertInvariants(t, q)
}

func TestQueue_DuplicateInsert(t *testing.T) {
	q := New()
	require.NoError(t, q.Insert(task.New("dup", 4, 0)))
	err := q.Insert(task.New("dup", 8, 1))
	assert.ErrorIs(t, err, ErrDuplicateKey)
	assert.Equal(t, 1, q.Size())

	top, err := q.PeekMax()
	require.NoError(t, err)
	assert.Equal(t, 4, top.Priority, "failed insert must not alter the resident task")

	// Re-insert after extraction is allowed.
	_, err = q.ExtractMax()
	require.NoError(t, err)
	assert.NoError(t, q.Insert(task.New("dup", 8, 1)))
}

func TestQueue_ExtractFromEmpty(t *testing.T) {
	q := New()
	_, err := q.ExtractMax()
	assert.ErrorIs(t, err, ErrEmptyQueue)
	assert.True(t, q.IsEmpty())
}

func TestQueue_IncreaseKey(t *testing.T) {
	q := New()
	require.NoError(t, q.Insert(task.New("a", 10, 0)))
	require.NoError(t, q.Insert(task.New("b", 5, 0)))
	require.NoError(t, q.Insert(task.New("c", 1, 0)))

	t.Run("absent id", func(t *testing.T) {
		assert.ErrorIs(t, q.IncreaseKey("missing", 99), ErrNotFound)
	})

	t.Run("lower value rejected", func(t *testing.T) {
		err := q.IncreaseKey("b", 4)
		assert.ErrorIs(t, err, ErrInvalidPriority)
		assertInvariants(t, q)
		top, _ := q.PeekMax()
		assert.Equal(t, "a", top.ID, "failed increase must leave the queue unchanged")
	})

	t.Run("moves toward the root", func(t *testing.T) {
		require.NoError(t, q.IncreaseKey("c", 20))
		assertInvariants(t, q)
		top, err := q.PeekMax()
		require.NoError(t, err)
		assert.Equal(t, "c", top.ID)
		assert.Equal(t, 20, top.Priority)
	})

	t.Run("equal value allowed", func(t *testing.T) {
		require.NoError(t, q.IncreaseKey("b", 5))
		assertInvariants(t, q)
	})
}

func TestQueue_DecreaseKey(t *testing.T) {
	q := New()
	require.NoError(t, q.Insert(task.New("a", 10, 0)))
	require.NoError(t, q.Insert(task.New("b", 5, 0)))
	require.NoError(t, q.Insert(task.New("c", 1, 0)))

	t.Run("absent id", func(t *testing.T) {
		assert.ErrorIs(t, q.DecreaseKey("missing", 0), ErrNotFound)
	})

	t.Run("higher value rejected", func(t *testing.T) {
		err := q.DecreaseKey("b", 6)
		assert.ErrorIs(t, err, ErrInvalidPriority)
		assertInvariants(t, q)
	})

	t.Run("moves away from the root", func(t *testing.T) {
		require.NoError(t, q.DecreaseKey("a", 0))
		assertInvariants(t, q)
		top, err := q.PeekMax()
		require.NoError(t, err)
		assert.Equal(t, "b", top.ID)

		resident := make(map[string]int)
		for !q.IsEmpty() {
			item, err := q.ExtractMax()
			require.NoError(t, err)
			resident[item.ID] = item.Priority
		}
		assert.Equal(t, map[string]int{"a": 0, "b": 5, "c": 1}, resident)
	})
}

func TestQueue_KeyMutationUnderChurn(t *testing.T) {
	rnd := rand.New(rand.NewSource(7))
	q := New()
	ids := make([]string, 0, 64)
	for i := 0; i < 64; i++ {
		id := fmt.Sprintf("n%02d", i)
		require.NoError(t, q.Insert(task.New(id, rnd.Intn(100), rnd.Intn(10))))
		ids = append(ids, id)
	}

	for i := 0; i < 500; i++ {
		id := ids[rnd.Intn(len(ids))]
		if !q.Contains(id) {
			continue
		}
		current := q.heap[q.pos[id]].Priority
		if rnd.Intn(2) == 0 {
			require.NoError(t, q.IncreaseKey(id, current+rnd.Intn(10)))
		} else {
			require.NoError(t, q.DecreaseKey(id, current-rnd.Intn(10)))
		}
		assertInvariants(t, q)
	}
}

func TestQueue_RoundTripMatchesDescendingSort(t *testing.T) {
	rnd := rand.New(rand.NewSource(5))
	items := make([]task.Task, 0, 100)
	for i, priority := range rnd.Perm(100) {
		items = append(items, task.New(fmt.Sprintf("p%03d", i), priority, rnd.Intn(4)))
	}

	expected := append([]task.Task(nil), items...)
	sort.Slice(expected, func(i, j int) bool { return higherPriority(expected[i], expected[j]) })

	q := New()
	for _, item := range items {
		require.NoError(t, q.Insert(item))
	}
	var extracted []task.Task
	for !q.IsEmpty() {
		item, err := q.ExtractMax()
		require.NoError(t, err)
		extracted = append(extracted, item)
	}
	assert.Equal(t, expected, extracted)
}

func TestQueue_SizeConservation(t *testing.T) {
	q := New()
	for i := 0; i < 32; i++ {
		require.NoError(t, q.Insert(task.New(fmt.Sprintf("t%02d", i), i%5, 0)))
		assert.Equal(t, i+1, q.Size())
	}
	for i := 31; i >= 0; i-- {
		_, err := q.ExtractMax()
		require.NoError(t, err)
		assert.Equal(t, i, q.Size())
	}
	assert.True(t, q.IsEmpty())
}

func TestQueue_Contains(t *testing.T) {
	q := New()
	assert.False(t, q.Contains("a"))
	require.NoError(t, q.Insert(task.New("a", 1, 0)))
	assert.True(t, q.Contains("a"))
	_, err := q.ExtractMax()
	require.NoError(t, err)
	assert.False(t, q.Contains("a"))
}
