//go:build wireinject

package main

import (
	"github.com/google/wire"
)

func initApp(path ConfigPath) (*App, func(), error) {
	wire.Build(ProviderSet)
	return nil, nil, nil
}
