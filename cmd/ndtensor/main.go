// Package main provides the ndtensor CLI.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/born-ml/ndtensor/tensor"
)

const version = "v0.1.0-dev"

func main() {
	if len(os.Args) < 2 {
		usage()
		return
	}

	switch os.Args[1] {
	case "version":
		fmt.Printf("ndtensor %s\n", version)
	case "demo":
		if err := demo(); err != nil {
			log.Fatalf("demo: %v", err)
		}
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Println("ndtensor - fixed-rank dense tensors for Go")
	fmt.Printf("Version: %s\n\n", version)
	fmt.Println("Commands:")
	fmt.Println("  version    Show version")
	fmt.Println("  demo       Multiply two small matrices and print the result")
}

func demo() error {
	a, err := tensor.FromInit[float64](2, [][]float64{{1, 2, 3}, {4, 5, 6}})
	if err != nil {
		return err
	}
	b, err := tensor.FromInit[float64](2, [][]float64{{7, 8}, {9, 10}, {11, 12}})
	if err != nil {
		return err
	}

	c := tensor.MatMul[float64](a, b)
	fmt.Println("a x b =")
	if err := tensor.Format[float64](os.Stdout, c, tensor.WithPrecision(1)); err != nil {
		return err
	}
	fmt.Println()

	v := tensor.FromRef[float64](a.Col(1))
	fmt.Printf("dot(a[:,1], a[:,1]) = %g\n", tensor.Dot[float64](v, a.Col(1)))
	fmt.Printf("descriptor of a[:,1]: %s\n", a.Col(1).Descriptor().String())
	return nil
}
