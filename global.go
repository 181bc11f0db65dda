package datachat

import (
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

var (
	Logger = zerolog.Nop()
	Redis  *redis.Client
)
