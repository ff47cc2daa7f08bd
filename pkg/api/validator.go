package api

import "errors"

// MaxNameLength bounds the player name accepted by INIT.
const MaxNameLength = 32

// Validator - interface DTOs can implement
type Validator interface {
	Validate() error
}

func (p DirectionPayload) Validate() error {
	if p.Dx == 0 && p.Dy == 0 && p.Dz == 0 {
		return errors.New("movement vector cannot be zero")
	}
	if p.Dx < -1 || p.Dx > 1 || p.Dy < -1 || p.Dy > 1 || p.Dz < -1 || p.Dz > 1 {
		return errors.New("movement step too large")
	}
	if p.Dz != 0 && (p.Dx != 0 || p.Dy != 0) {
		return errors.New("stairs move cannot change x or y")
	}
	return nil
}

func (p InitPayload) Validate() error {
	if len(p.Name) > MaxNameLength {
		return errors.New("name too long")
	}
	return nil
}
