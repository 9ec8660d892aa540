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

package avl_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/cybrota/ordset/avl"
)

type treeTestCase struct {
	Name          string
	InitialKeys   []string
	KeysToInsert  []string
	KeysToDelete  []string
	ExpectedOrder []string // in-order traversal expectation after operations
}

func TestTreeOperations(t *testing.T) {
	testCases := []treeTestCase{
		{
			Name:          "Simple Insertion",
			InitialKeys:   nil,
			KeysToInsert:  []string{"apple", "banana", "cherry"},
			ExpectedOrder: []string{"apple", "banana", "cherry"},
		},
		{
			Name:          "Insertion with Balancing (Right-Heavy)",
			InitialKeys:   []string{"apple"},
			KeysToInsert:  []string{"banana", "cherry"},
			ExpectedOrder: []string{"apple", "banana", "cherry"},
		},
		{
			Name:          "Insertion with Balancing (Left-Heavy)",
			InitialKeys:   []string{"cherry"},
			KeysToInsert:  []string{"banana", "apple"},
			ExpectedOrder: []string{"apple", "banana", "cherry"},
		},
		{
			Name:          "Deletion with Balancing",
			InitialKeys:   []string{"cherry", "banana", "apple"},
			KeysToDelete:  []string{"cherry"},
			ExpectedOrder: []string{"apple", "banana"},
		},
		{
			Name:          "Mixed Operations",
			InitialKeys:   []string{"dog", "cat"},
			KeysToInsert:  []string{"elephant", "bird"},
			KeysToDelete:  []string{"cat"},
			ExpectedOrder: []string{"bird", "dog", "elephant"},
		},
		{
			Name:          "Duplicates Ignored",
			InitialKeys:   []string{"dog", "cat", "dog"},
			KeysToInsert:  []string{"cat", "cat", "ant"},
			ExpectedOrder: []string{"ant", "cat", "dog"},
		},
		{
			Name:          "Delete Node With Two Children",
			InitialKeys:   []string{"d", "b", "f", "a", "c", "e", "g"},
			KeysToDelete:  []string{"d", "b"},
			ExpectedOrder: []string{"a", "c", "e", "f", "g"},
		},
		{
			Name:          "Delete Everything",
			InitialKeys:   []string{"d", "b", "f"},
			KeysToDelete:  []string{"b", "d", "f"},
			ExpectedOrder: []string{},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			tree := avl.New[string]()
			for _, key := range tc.InitialKeys {
				tree.Insert(key)
			}
			for _, key := range tc.KeysToInsert {
				tree.Insert(key)
			}
			for _, key := range tc.KeysToDelete {
				if err := tree.Remove(key); err != nil {
					t.Fatalf("Remove(%q): %v", key, err)
				}
			}
			if err := tree.Check(); err != nil {
				t.Fatalf("inconsistent tree: %v", err)
			}
			if !verifyInOrderTraversal(t, tree, tc.ExpectedOrder) {
				t.Errorf("In-order traversal mismatch for test case '%s'", tc.Name)
			}
			if tree.Count() != len(tc.ExpectedOrder) {
				t.Errorf("Count() = %d; want %d", tree.Count(), len(tc.ExpectedOrder))
			}
		})
	}
}

func verifyInOrderTraversal(t *testing.T, tree *avl.Tree[string], expected []string) bool {
	actual := tree.Values()
	if len(actual) != len(expected) {
		t.Logf("Length mismatch. Expected %d elements, got %d", len(expected), len(actual))
		return false
	}
	for i := range expected {
		if actual[i] != expected[i] {
			t.Logf("Mismatch at index %d. Expected '%s', got '%s'", i, expected[i], actual[i])
			return false
		}
	}
	return true
}

// a tree holding 7, the starting point of most scenarios below
func sevenTree() *avl.Tree[int] {
	tree := avl.New[int]()
	tree.Insert(7)
	return tree
}

func TestContains(t *testing.T) {
	tree := sevenTree()
	if !tree.Contains(7) {
		t.Fatal("Contains(7) = false; want true")
	}
	for _, v := range []int{-1, 0, 6, 8, 100} {
		if tree.Contains(v) {
			t.Errorf("Contains(%d) = true; want false", v)
		}
	}

	tree.Insert(3)
	tree.Insert(11)
	for _, v := range []int{2, 4, 10, 12} {
		if tree.Contains(v) {
			t.Errorf("Contains(%d) = true after descending; want false", v)
		}
	}
}

func TestRemove(t *testing.T) {
	tree := sevenTree()
	if err := tree.Remove(7); err != nil {
		t.Fatalf("Remove(7): %v", err)
	}
	if tree.Contains(7) {
		t.Error("Contains(7) = true after Remove")
	}
	if !tree.IsEmpty() {
		t.Error("IsEmpty() = false after removing the only value")
	}
}

func TestIsEmpty(t *testing.T) {
	tree := sevenTree()
	if tree.IsEmpty() {
		t.Fatal("IsEmpty() = true; want false")
	}
	if err := tree.Remove(7); err != nil {
		t.Fatalf("Remove(7): %v", err)
	}
	if !tree.IsEmpty() {
		t.Fatal("IsEmpty() = false; want true")
	}
}

func TestMakeEmpty(t *testing.T) {
	tree := sevenTree()
	tree.Insert(8)
	tree.MakeEmpty()
	if !tree.IsEmpty() {
		t.Error("IsEmpty() = false after MakeEmpty")
	}
	if tree.Count() != 0 {
		t.Errorf("Count() = %d after MakeEmpty; want 0", tree.Count())
	}
	if tree.Height() != -1 {
		t.Errorf("Height() = %d after MakeEmpty; want -1", tree.Height())
	}
}

func TestFindMinMax(t *testing.T) {
	tree := sevenTree()
	tree.Insert(8)
	tree.Insert(4)
	tree.Insert(9)

	if got, err := tree.Max(); err != nil || got != 9 {
		t.Errorf("Max() = %d, %v; want 9, nil", got, err)
	}
	if got, err := tree.Min(); err != nil || got != 4 {
		t.Errorf("Min() = %d, %v; want 4, nil", got, err)
	}
}

func TestInOrderIterator(t *testing.T) {
	expected := []int{4, 7, 8, 9}

	tree := sevenTree()
	tree.Insert(8)
	tree.Insert(4)
	tree.Insert(9)

	i := 0
	for v := range tree.All() {
		if i >= len(expected) {
			t.Fatalf("iterator yielded extra value %d", v)
		}
		if v != expected[i] {
			t.Errorf("value %d = %d; want %d", i, v, expected[i])
		}
		i++
	}
	if i != len(expected) {
		t.Errorf("iterator yielded %d values; want %d", i, len(expected))
	}
}

func TestIteratorExhaustion(t *testing.T) {
	tree := sevenTree()
	tree.Insert(1)

	it := tree.Iter()
	for _, want := range []int{1, 7} {
		got, ok := it.Next()
		if !ok || got != want {
			t.Fatalf("Next() = %d, %v; want %d, true", got, ok, want)
		}
	}
	for i := 0; i < 3; i++ {
		if got, ok := it.Next(); ok {
			t.Fatalf("Next() after exhaustion = %d, true", got)
		}
	}

	empty := avl.New[int]().Iter()
	if _, ok := empty.Next(); ok {
		t.Fatal("Next() on empty tree returned a value")
	}
}

func TestAllStopsEarly(t *testing.T) {
	tree := avl.New[int]()
	for i := 0; i < 20; i++ {
		tree.Insert(i)
	}
	seen := 0
	for v := range tree.All() {
		if v == 4 {
			break
		}
		seen++
	}
	if seen != 4 {
		t.Errorf("saw %d values before break; want 4", seen)
	}
}

func TestPrintTree(t *testing.T) {
	expected := "digraph {\n" +
		"8->7\n" +
		"8->9\n" +
		"9->10\n" +
		"}\n"

	tree := sevenTree()
	for i := 8; i < 11; i++ {
		tree.Insert(i)
	}

	var result bytes.Buffer
	if err := tree.Export(&result); err != nil {
		t.Fatalf("Export: %v", err)
	}
	if result.String() != expected {
		t.Errorf("Export() =\n%s\nwant\n%s", result.String(), expected)
	}
}

func TestExportEmpty(t *testing.T) {
	var result bytes.Buffer
	if err := avl.New[int]().Export(&result); err != nil {
		t.Fatalf("Export: %v", err)
	}
	if result.String() != "digraph {\n}\n" {
		t.Errorf("Export() of empty tree = %q", result.String())
	}
}

func TestEmptyTreeErrors(t *testing.T) {
	tree := avl.New[int]()

	if tree.Contains(7) {
		t.Error("Contains(7) on empty tree = true")
	}
	if err := tree.Remove(7); !errors.Is(err, avl.ErrNotFound) {
		t.Errorf("Remove on empty tree = %v; want ErrNotFound", err)
	}
	if _, err := tree.Min(); !errors.Is(err, avl.ErrEmpty) {
		t.Errorf("Min on empty tree = %v; want ErrEmpty", err)
	}
	if _, err := tree.Max(); !errors.Is(err, avl.ErrEmpty) {
		t.Errorf("Max on empty tree = %v; want ErrEmpty", err)
	}
	if !tree.IsEmpty() || tree.Count() != 0 {
		t.Error("failed operations changed the empty tree")
	}
}

func TestRemoveAbsentLeavesTree(t *testing.T) {
	tree := avl.New[int]()
	for _, v := range []int{5, 3, 8, 1, 4} {
		tree.Insert(v)
	}
	before := tree.Values()

	err := tree.Remove(6)
	if !errors.Is(err, avl.ErrNotFound) {
		t.Fatalf("Remove(6) = %v; want ErrNotFound", err)
	}
	if tree.Count() != len(before) {
		t.Errorf("Count() = %d; want %d", tree.Count(), len(before))
	}
	if err := tree.Check(); err != nil {
		t.Fatal(err)
	}
}

func TestInsertReportsDuplicates(t *testing.T) {
	tree := avl.New[string]()
	if !tree.Insert("x") {
		t.Fatal("first Insert returned false")
	}
	if tree.Insert("x") {
		t.Fatal("duplicate Insert returned true")
	}
	if tree.Count() != 1 {
		t.Fatalf("Count() = %d; want 1", tree.Count())
	}
}

type version struct {
	major, minor int
}

func TestNewFunc(t *testing.T) {
	tree := avl.NewFunc(func(a, b version) int {
		if a.major != b.major {
			return a.major - b.major
		}
		return a.minor - b.minor
	})
	for _, v := range []version{{1, 2}, {0, 9}, {1, 0}, {2, 0}, {1, 2}} {
		tree.Insert(v)
	}

	expected := []version{{0, 9}, {1, 0}, {1, 2}, {2, 0}}
	got := tree.Values()
	if len(got) != len(expected) {
		t.Fatalf("Values() = %v; want %v", got, expected)
	}
	for i := range expected {
		if got[i] != expected[i] {
			t.Fatalf("Values() = %v; want %v", got, expected)
		}
	}
	if !tree.Contains(version{1, 0}) || tree.Contains(version{1, 1}) {
		t.Error("Contains with custom compare failed")
	}
}

func TestNewFuncNilPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("NewFunc(nil) did not panic")
		}
	}()
	avl.NewFunc[int](nil)
}

func TestPrint(t *testing.T) {
	tree := avl.New[int]()
	if depth := tree.Print(&bytes.Buffer{}); depth != 0 {
		t.Errorf("Print of empty tree depth = %d; want 0", depth)
	}
	for i := 1; i <= 7; i++ {
		tree.Insert(i)
	}
	var out bytes.Buffer
	depth := tree.Print(&out)
	if depth != tree.Height()+1 {
		t.Errorf("Print depth = %d; want %d", depth, tree.Height()+1)
	}
	if lines := bytes.Count(out.Bytes(), []byte("\n")); lines != 7 {
		t.Errorf("Print wrote %d lines; want 7", lines)
	}
}
