package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/symbolica/functerm"
)

func main() {
	cmd := &cobra.Command{
		Use:   "functerm",
		Short: "Evaluate f(x) = x^2 over the integers 0 through 10",
		Args:  cobra.NoArgs,
		Run:   func(cmd *cobra.Command, args []string) { demo() },
	}
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// demo builds f(x) = x^2 and prints its values over 0 through 10. The inputs
// are valid by construction, so any failure is fatal.
func demo() {
	f := functerm.NewFunction("x")
	x, err := f.Variable("x")
	if err != nil {
		logrus.WithError(err).Fatal("could not declare x")
	}
	f.Body = functerm.Calculation(x, functerm.Constant(2), functerm.Power)

	for i := 0; i <= 10; i++ {
		x := float64(i)
		y, err := f.SolveArgs(x)
		if err != nil {
			logrus.WithError(err).WithFields(logrus.Fields{
				"function": f.String(),
				"x":        x,
			}).Fatal("could not solve")
		}
		fmt.Printf("f(%v) = %v\n", x, y)
	}
}
