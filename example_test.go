package sortedmap

import (
	"errors"
	"fmt"
)

func Example() {
	m := New()
	m.Set("banana", 3)
	m.Set("apple", 5)
	m.Set("cherry", 1)
	for key, value := range m.All() {
		fmt.Printf("%v: %v\n", key, value)
	}
	// Output:
	// apple: 5
	// banana: 3
	// cherry: 1
}

func ExampleNewFromSource() {
	m, err := NewFromSource(map[string]int{"two": 2, "one": 1, "three": 3})
	if err != nil {
		panic(err)
	}
	fmt.Println(m)
	// Output:
	// {one: 1, three: 3, two: 2}
}

func ExampleMap_Len() {
	m := New()
	m.Set(0, "zero")
	m.Set(1, "one")
	fmt.Println(m.Len())
	// Output:
	// 2
}

func ExampleMap_Get() {
	m := New()
	m.Set("here", 1)
	if _, err := m.Get("missing"); errors.Is(err, ErrKeyNotFound) {
		fmt.Println("no entry for \"missing\"")
	}
	// Output:
	// no entry for "missing"
}

func ExampleMap_Equal() {
	m1, _ := NewFromSource([]Entry{{1, "one"}, {2, "two"}})
	m2, _ := NewFromSource([]Entry{{2, "two"}, {1, "one"}})
	fmt.Println(m1.Equal(m2))
	m2.Set(2, "TWO")
	fmt.Println(m1.Equal(m2))
	// Output:
	// true
	// false
}
