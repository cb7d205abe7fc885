package usecase

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/lucasbarrena/shopsphere-gateway/internal/listquery"
	"github.com/lucasbarrena/shopsphere-gateway/internal/model"
	"github.com/lucasbarrena/shopsphere-gateway/internal/product/dto"
)

type fakeProductClient struct {
	mu       sync.Mutex
	searches []string
	findAll  func(ctx context.Context, params listquery.Params) (*model.Page[model.Product], error)
}

func (f *fakeProductClient) Active(ctx context.Context) ([]model.Product, error) { return nil, nil }
func (f *fakeProductClient) FindByID(ctx context.Context, id int64) (*model.Product, error) {
	return &model.Product{ID: id}, nil
}
func (f *fakeProductClient) FindAll(ctx context.Context, params listquery.Params) (*model.Page[model.Product], error) {
	f.mu.Lock()
	f.searches = append(f.searches, params.Search)
	f.mu.Unlock()
	if f.findAll != nil {
		return f.findAll(ctx, params)
	}
	return &model.Page[model.Product]{Content: []model.Product{{ID: 1, Name: params.Search}}}, nil
}
func (f *fakeProductClient) Create(ctx context.Context, input *dto.CreateProductInput) (*model.Product, error) {
	return &model.Product{ID: 1, Name: input.Name}, nil
}
func (f *fakeProductClient) Update(ctx context.Context, id int64, input *dto.UpdateProductInput) (*model.Product, error) {
	return &model.Product{ID: id}, nil
}
func (f *fakeProductClient) Deactivate(ctx context.Context, id int64) error { return nil }
func (f *fakeProductClient) Reactivate(ctx context.Context, id int64) error { return nil }

func TestSuggestCollapsesTypingBurst(t *testing.T) {
	client := &fakeProductClient{}
	uc := NewProductUseCase(client, 40*time.Millisecond, zap.NewNop())

	var wg sync.WaitGroup
	results := make([][]model.Product, 3)
	errs := make([]error, 3)
	for i, term := range []string{"k", "ke", "key"} {
		wg.Add(1)
		go func(i int, term string) {
			defer wg.Done()
			results[i], errs[i] = uc.Suggest(context.Background(), "root@example.com", term)
		}(i, term)
		time.Sleep(10 * time.Millisecond)
	}
	wg.Wait()

	// one upstream search, for the final term, shared by all three callers
	require.Equal(t, []string{"key"}, client.searches)
	for i, out := range results {
		require.NoError(t, errs[i])
		require.Len(t, out, 1)
		assert.Equal(t, "key", out[0].Name)
	}
}

func TestSuggestBoundsPageSize(t *testing.T) {
	client := &fakeProductClient{}
	var gotSize int
	client.findAll = func(ctx context.Context, params listquery.Params) (*model.Page[model.Product], error) {
		gotSize = params.Size
		return &model.Page[model.Product]{}, nil
	}
	uc := NewProductUseCase(client, time.Millisecond, zap.NewNop())

	_, err := uc.Suggest(context.Background(), "root@example.com", "key")
	require.NoError(t, err)
	assert.Equal(t, 8, gotSize)
}

func TestAdminListSupersededByNewerRequest(t *testing.T) {
	client := &fakeProductClient{}
	started := make(chan struct{})
	unblock := make(chan struct{})
	client.findAll = func(ctx context.Context, params listquery.Params) (*model.Page[model.Product], error) {
		if params.Page == 0 {
			close(started)
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-unblock:
			}
		}
		return &model.Page[model.Product]{Number: params.Page}, nil
	}
	uc := NewProductUseCase(client, time.Millisecond, zap.NewNop())

	errc := make(chan error, 1)
	go func() {
		_, err := uc.AdminList(context.Background(), "root@example.com", listquery.Params{Page: 0, Size: 10})
		errc <- err
	}()
	<-started

	// the newer page request cancels the slow one still in flight
	page, err := uc.AdminList(context.Background(), "root@example.com", listquery.Params{Page: 1, Size: 10})
	require.NoError(t, err)
	assert.Equal(t, 1, page.Number)

	err = <-errc
	assert.ErrorIs(t, err, context.Canceled)
	close(unblock)
}
