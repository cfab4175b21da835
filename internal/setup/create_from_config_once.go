package setup

import (
	"context"
	"sync"

	"github.com/bornholm/billet/internal/config"
)

type fromConfigFunc[T any] func(ctx context.Context, conf *config.Config) (T, error)

type onceResult[T any] struct {
	once  sync.Once
	value T
	err   error
}

// createFromConfigOnce memoizes the result of fn per configuration.
func createFromConfigOnce[T any](fn fromConfigFunc[T]) fromConfigFunc[T] {
	var (
		mutex   sync.Mutex
		results = map[*config.Config]*onceResult[T]{}
	)

	return func(ctx context.Context, conf *config.Config) (T, error) {
		mutex.Lock()
		result, exists := results[conf]
		if !exists {
			result = &onceResult[T]{}
			results[conf] = result
		}
		mutex.Unlock()

		result.once.Do(func() {
			result.value, result.err = fn(ctx, conf)
		})

		return result.value, result.err
	}
}
