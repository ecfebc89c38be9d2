// Package fanout executa lotes de leituras independentes em paralelo
package fanout

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Task é uma leitura independente que produz um resultado do tipo T
type Task[T any] func(ctx context.Context) (T, error)

// All despacha todas as tasks de uma vez e espera a conclusão do lote.
// Os resultados mantêm a posição da task correspondente, independente da
// ordem de término. O primeiro erro cancela o contexto das demais tasks e
// falha o lote inteiro; não há retentativa nem resultado parcial
func All[T any](ctx context.Context, tasks ...Task[T]) ([]T, error) {
	group, ctx := errgroup.WithContext(ctx)

	results := make([]T, len(tasks))
	for i, task := range tasks {
		i, task := i, task
		group.Go(func() error {
			result, err := task(ctx)
			if err != nil {
				return err
			}
			results[i] = result
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}
