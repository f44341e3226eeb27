package io

import (
	"errors"

	"github.com/PickledChair/BrainFucker/translate"
)

var f = translate.From

var (
	// Channel errors
	ErrChannelFull   = errors.New(f("channel full"))
	ErrChannelEmpty  = errors.New(f("channel empty"))
	ErrChannelClosed = errors.New(f("channel closed"))
)
