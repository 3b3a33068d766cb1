package entity

import (
	"fmt"
	"time"
)

// Direction sentido de un movimiento de stock. Tipo cerrado de dos valores:
// un valor distinto de in/out no pasa de ParseDirection.
type Direction string

const (
	DirectionIn  Direction = "in"  // entrada
	DirectionOut Direction = "out" // salida
)

// ParseDirection valida y construye una Direction desde texto.
func ParseDirection(s string) (Direction, error) {
	switch d := Direction(s); d {
	case DirectionIn, DirectionOut:
		return d, nil
	}
	return "", fmt.Errorf("dirección de movimiento inválida: %q", s)
}

// Valid indica si la dirección es uno de los dos valores permitidos.
func (d Direction) Valid() bool {
	return d == DirectionIn || d == DirectionOut
}

// Sign devuelve +1 para entradas y -1 para salidas.
func (d Direction) Sign() int {
	if d == DirectionOut {
		return -1
	}
	return 1
}

// StockMovement registro inmutable del historial de inventario (append-only).
// Nunca se actualiza; solo se elimina en cascada al borrar su producto.
type StockMovement struct {
	ID            string
	ProductID     string
	ChangeAmount  int // siempre positivo; el sentido lo da Direction
	Direction     Direction
	OperatorID    string
	OperationTime time.Time
	Notes         *string
}

// StockMovementView movimiento unido con nombre de producto y username del
// operador, para consultas y reportes.
type StockMovementView struct {
	StockMovement
	ProductName  string
	OperatorName string
}
