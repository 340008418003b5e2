package filter

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/shopsavvy/savvyctl/shopsavvy"
)

// DefaultConcurrency bounds how many products are filtered in parallel.
const DefaultConcurrency = 10

// MatchOffers filters each product's offer list through the compiled filter
// and drops products left with no matching offers. Products are evaluated
// concurrently with bounded parallelism.
func MatchOffers(ctx context.Context, f CompiledFilter, products []shopsavvy.ProductWithOffers) ([]shopsavvy.ProductWithOffers, error) {
	if len(products) == 0 {
		return nil, nil
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(DefaultConcurrency)

	matched := make([][]shopsavvy.Offer, len(products))
	for i, product := range products {
		i, product := i, product
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}

			var offers []shopsavvy.Offer
			for _, offer := range product.Offers {
				if f.Evaluate(offer) {
					offers = append(offers, offer)
				}
			}
			matched[i] = offers
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	var results []shopsavvy.ProductWithOffers
	for i, product := range products {
		if len(matched[i]) == 0 {
			continue
		}
		product.Offers = matched[i]
		results = append(results, product)
	}
	return results, nil
}

// MatchOffersList filters a flat offer list, preserving order.
func MatchOffersList(f CompiledFilter, offers []shopsavvy.Offer) []shopsavvy.Offer {
	var results []shopsavvy.Offer
	for _, offer := range offers {
		if f.Evaluate(offer) {
			results = append(results, offer)
		}
	}
	return results
}
