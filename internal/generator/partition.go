package generator

import (
	"errors"
	"fmt"

	"realestate-seed/internal/models"
)

var (
	ErrPartitionSize = errors.New("owned and rented sizes exceed property count")
	ErrUnpartitioned = errors.New("property is not in any partition")
)

// Partition splits property IDs 1..N into disjoint occupancy sets.
type Partition struct {
	Owned     []int
	Rented    []int
	Available []int

	status map[int]models.PropertyStatus
}

// NewPartition shuffles 1..total and slices off the owned and rented sets;
// the remainder is available.
func NewPartition(s *State, total, owned, rented int) (*Partition, error) {
	if owned < 0 || rented < 0 || owned+rented > total {
		return nil, fmt.Errorf("%w: %d+%d > %d", ErrPartitionSize, owned, rented, total)
	}

	ids := idRange(1, total)
	s.shuffle(ids)

	p := &Partition{
		Owned:     ids[:owned],
		Rented:    ids[owned : owned+rented],
		Available: ids[owned+rented:],
		status:    make(map[int]models.PropertyStatus, total),
	}
	for _, id := range p.Owned {
		p.status[id] = models.StatusOwned
	}
	for _, id := range p.Rented {
		p.status[id] = models.StatusRented
	}
	for _, id := range p.Available {
		p.status[id] = models.StatusAvailable
	}
	return p, nil
}

func (p *Partition) StatusOf(id int) (models.PropertyStatus, error) {
	status, ok := p.status[id]
	if !ok {
		return "", fmt.Errorf("property ID %d: %w", id, ErrUnpartitioned)
	}
	return status, nil
}
