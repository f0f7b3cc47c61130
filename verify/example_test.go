package verify_test

import (
	"errors"
	"fmt"

	commonErrors "github.com/amp-labs/things/errors"
	"github.com/amp-labs/things/verify"
)

func ExampleVerify() {
	name, err := verify.Verify("gopher")
	fmt.Println(name, err)

	_, err = verify.Verify("", verify.WithMessage("name is required"))
	fmt.Println(err)
	fmt.Println(errors.Is(err, commonErrors.ErrMissingValue))

	// Output:
	// gopher <nil>
	// missing value: name is required
	// true
}

func ExampleVerifyFunc() {
	isPort := func(p int) bool { return p > 0 && p < 65536 }

	port, err := verify.VerifyFunc(8080, isPort)
	fmt.Println(port, err)

	_, err = verify.VerifyFunc(70000, isPort, verify.WithMessage("port out of range"))
	fmt.Println(err)

	// Output:
	// 8080 <nil>
	// missing value: port out of range
}

func ExampleStrict() {
	_, err := verify.VerifyFunc[string]("x", nil, verify.Strict())
	fmt.Println(err)

	out, err := verify.VerifyFunc[string]("x", nil, verify.Lenient())
	fmt.Println(out, err)

	// Output:
	// argument not specified: predicate
	// x <nil>
}
