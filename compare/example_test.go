package compare_test

import (
	"fmt"

	"github.com/hasbyte1/go-laravel-query/compare"
)

func ExampleCompare() {
	loose, _ := compare.Compare("=", "500", 500)
	strict, _ := compare.Compare("===", "500", 500)
	_, err := compare.Compare("~", 1, 1)
	fmt.Println(loose, strict, err)
	// Output: true false "~": compare: invalid operator
}

func ExampleOrder() {
	fmt.Println(compare.Order("9", "10"), compare.Order(nil, false), compare.Order(100, "apple"))
	// Output: -1 -1 -1
}
