package domain

import "fmt"

type Vehicle struct {
	make string
	year int
}

func NewVehicle(brand string, year int) Vehicle {
	return Vehicle{make: brand, year: year}
}

func (v Vehicle) GetInfo() string {
	return fmt.Sprintf("Make: %s, Year: %d", v.make, v.year)
}

// Car is a Vehicle with a model.
// GetModel only reports the model, GetInfo is delegated to the vehicle.
type Car struct {
	vehicle Vehicle
	model   string
}

func NewCar(brand string, year int, model string) Car {
	return Car{
		vehicle: NewVehicle(brand, year),
		model:   model,
	}
}

func (c Car) GetModel() string {
	return fmt.Sprintf("Model: %s", c.model)
}

func (c Car) GetInfo() string {
	return c.vehicle.GetInfo()
}
