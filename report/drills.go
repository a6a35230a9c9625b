package report

import (
	"assignment-lab/domain"
	"assignment-lab/runtime"
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"
)

var sampleDays = []string{"Monday", "tuesday", "WEDNESDAY", "Thursday", "Friday", "Saturday", "sunday"}

// Domain runs the synchronous drills on fixed samples.
// Samples go through the validating constructors, a rejected sample is returned as an error.
func Domain() ([]Row, error) {
	rows := []Row{
		{Drill: "formatString", Input: `"Hi", false`, Output: domain.FormatString("Hi", lo.ToPtr(false))},
		{Drill: "formatString", Input: `"Hi", true`, Output: domain.FormatString("Hi", lo.ToPtr(true))},
		{Drill: "formatString", Input: `"Hi"`, Output: domain.FormatString("Hi", nil)},
	}

	items, err := ratedItems(map[string]float64{"A": 5, "B": 2}, "A", "B")
	if err != nil {
		return nil, err
	}
	rows = append(rows, Row{
		Drill:  "filterByRating",
		Input:  fmt.Sprintf("%v", items),
		Output: fmt.Sprintf("%v", domain.FilterByRating(items)),
	})

	rows = append(rows, Row{
		Drill:  "concatenateArrays",
		Input:  "[1 2] [] [3]",
		Output: fmt.Sprintf("%v", domain.ConcatenateArrays([]int{1, 2}, []int{}, []int{3})),
	})

	car := domain.NewCar("Toyota", 2020, "Corolla")
	rows = append(rows,
		Row{Drill: "Car.getInfo", Input: "Toyota 2020 Corolla", Output: car.GetInfo()},
		Row{Drill: "Car.getModel", Input: "Toyota 2020 Corolla", Output: car.GetModel()},
	)

	rows = append(rows,
		Row{Drill: "processValue", Input: `"hello"`, Output: formatNumber(domain.ProcessValue(domain.Text("hello")))},
		Row{Drill: "processValue", Input: "3", Output: formatNumber(domain.ProcessValue(domain.Number(3)))},
	)

	first, err := domain.NewProduct("a", 10)
	if err != nil {
		return nil, fmt.Errorf("sample product: %w", err)
	}
	second, err := domain.NewProduct("b", 10)
	if err != nil {
		return nil, fmt.Errorf("sample product: %w", err)
	}
	rows = append(rows,
		mostExpensiveRow([]domain.Product{first, second}),
		mostExpensiveRow(nil),
	)

	for _, name := range sampleDays {
		day, err := domain.ParseDay(name)
		if err != nil {
			return nil, fmt.Errorf("sample day: %w", err)
		}
		rows = append(rows, Row{Drill: "getDayType", Input: day.String(), Output: domain.GetDayType(day).String()})
	}

	return rows, nil
}

func ratedItems(ratings map[string]float64, titles ...string) ([]domain.RatedItem, error) {
	items := make([]domain.RatedItem, 0, len(titles))
	for _, title := range titles {
		item, err := domain.NewRatedItem(title, ratings[title])
		if err != nil {
			return nil, fmt.Errorf("sample rated item: %w", err)
		}
		items = append(items, item)
	}
	return items, nil
}

// Squares schedules one squaring per input and waits for all of them.
// A rejected square is reported as a failed row, only ctx ending the wait is an error.
func Squares(ctx context.Context, squarer *runtime.Squarer, inputs []float64) ([]Row, error) {
	futures := lo.Map(inputs, func(n float64, _ int) *runtime.Future[float64] {
		return squarer.Square(n)
	})
	rows := make([]Row, len(inputs))

	g, gCtx := errgroup.WithContext(ctx)
	for i, future := range futures {
		g.Go(func() error {
			row := Row{Drill: "squareAsync", Input: formatNumber(inputs[i])}
			value, err := future.Await(gCtx)
			switch {
			case err == nil:
				row.Output = formatNumber(value)
			case gCtx.Err() != nil && errors.Is(err, gCtx.Err()):
				return fmt.Errorf("waiting for square of %s: %w", row.Input, err)
			default:
				row.Output = err.Error()
				row.Failed = true
			}
			rows[i] = row
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return rows, nil
}

func mostExpensiveRow(products []domain.Product) Row {
	row := Row{Drill: "getMostExpensiveProduct", Input: fmt.Sprintf("%v", products)}
	if best, ok := domain.GetMostExpensiveProduct(products); ok {
		row.Output = best.Name
	} else {
		row.Output = "none"
	}
	return row
}

func formatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
