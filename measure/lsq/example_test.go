package lsq_test

import (
	"fmt"

	"github.com/cwbudde/algo-harmcompare/measure/lsq"
	"github.com/cwbudde/algo-harmcompare/series"
	"github.com/cwbudde/algo-harmcompare/settings"
)

func ExampleRelativeLeastSquares() {
	ls, _ := lsq.RelativeLeastSquares([]float64{1, 1, 1}, []float64{1, 2, 1})
	fmt.Printf("%.4f\n", ls)

	// Output:
	// 0.3333
}

func ExampleEngine_Evaluate() {
	exp, _ := series.New([][]float64{{0, 1, 2}, {1, 1, 2}, {2, 1, 2}})
	sim, _ := series.New([][]float64{{0, 1, 2}, {1, 2, 2}, {2, 1, 2}})

	e := lsq.NewEngine(settings.Settings{NumberHarmonics: 1, Weights: []float64{1, 1}})
	m, _, err := e.Evaluate(exp, sim)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(m)

	// Output:
	// 0.3333333333333333,0.0
}
