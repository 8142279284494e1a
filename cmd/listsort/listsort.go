package main

import (
	"bytes"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/cxxxr/linkedsort/lib/linkedlist"
	"github.com/cxxxr/linkedsort/lib/sequence"
)

var reverse bool

func init() {
	flag.BoolVar(&reverse, "r", false, "sort in descending order")
}

func readValues(args []string) ([]int, error) {
	if len(args) > 0 {
		return sequence.ParseInts(args)
	}
	return sequence.ReadInts(os.Stdin)
}

func sortValues(values []int) []int {
	less := func(a, b int) bool { return a < b }
	if reverse {
		less = func(a, b int) bool { return a > b }
	}

	head := linkedlist.SortFunc(linkedlist.FromSlice(values).Head(), less)

	sorted := make([]int, 0, len(values))
	for node := head; node != nil; node = node.Next() {
		sorted = append(sorted, node.Value())
	}
	return sorted
}

func main() {
	flag.Parse()

	values, err := readValues(flag.Args())
	if err != nil {
		log.Fatalf("%+v\n", err)
	}

	writer := bytes.NewBuffer(nil)
	if err := sequence.Format(sortValues(values), writer); err != nil {
		log.Fatalf("%+v\n", err)
	}

	fmt.Print(writer.String())
}
