package io

import (
	"errors"

	"github.com/ezrec/ucpu/translate"
)

var f = translate.From

var (
	// Channel errors
	ErrNoInput  = errors.New(f("no integer in input"))
	ErrNoOutput = errors.New(f("channel has no output"))
)
