package match_test

import (
	"fmt"

	"github.com/hasbyte1/go-laravel-query/match"
)

func ExampleWhere() {
	p, err := match.Where("price", ">=", 500)
	if err != nil {
		fmt.Println(err)
		return
	}
	ok, _ := p(map[string]any{"price": "650"})
	fmt.Println(ok)
	// Output: true
}

func ExampleMatchLike() {
	fmt.Println(match.MatchLike("John Doe", "%doe"), match.MatchLike("50%", `50\%`), match.MatchLike("AB", "a_c"))
	// Output: true true false
}

func ExampleOr() {
	paid, _ := match.Where("status", "paid")
	p := match.Or(paid, match.Null("status"))
	for _, r := range []map[string]any{{"status": "paid"}, {}, {"status": "void"}} {
		ok, _ := p(r)
		fmt.Print(ok, " ")
	}
	fmt.Println()
	// Output: true true false
}
