package client

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"portfolio-app/internal/domain/newsletter"
	"portfolio-app/internal/domain/showcase"
	"portfolio-app/internal/store"
)

// Showcase entity types fall back to the local JSON collections when the
// client was built WithLocalData; the operation shapes stay identical.

func (c *Client) Exhibitions(ctx context.Context) ([]showcase.Exhibition, error) {
	if c.exhibitions != nil {
		return c.exhibitions.List(ctx, nil)
	}
	return call[[]showcase.Exhibition](c, ctx, http.MethodGet, "/api/exhibitions", nil, "exhibitions")
}

func (c *Client) CreateExhibition(ctx context.Context, rec showcase.Exhibition) (showcase.Exhibition, error) {
	if c.exhibitions != nil {
		err := c.exhibitions.Create(ctx, &rec)
		return rec, err
	}
	return call[showcase.Exhibition](c, ctx, http.MethodPost, "/api/exhibitions", rec, "exhibition")
}

func (c *Client) UpdateExhibition(ctx context.Context, id int, fields store.Fields) (showcase.Exhibition, error) {
	if c.exhibitions != nil {
		rec, err := c.exhibitions.Update(ctx, id, fields)
		if err != nil {
			return showcase.Exhibition{}, err
		}
		return *rec, nil
	}
	return call[showcase.Exhibition](c, ctx, http.MethodPut, "/api/exhibitions/"+strconv.Itoa(id), fields, "exhibition")
}

func (c *Client) DeleteExhibition(ctx context.Context, id int) error {
	if c.exhibitions != nil {
		_, err := c.exhibitions.Delete(ctx, id)
		return err
	}
	_, err := c.do(ctx, http.MethodDelete, "/api/exhibitions/"+strconv.Itoa(id), nil)
	return err
}

func (c *Client) Critics(ctx context.Context) ([]showcase.Critic, error) {
	if c.critics != nil {
		return c.critics.List(ctx, nil)
	}
	return call[[]showcase.Critic](c, ctx, http.MethodGet, "/api/critics", nil, "critics")
}

func (c *Client) CreateCritic(ctx context.Context, rec showcase.Critic) (showcase.Critic, error) {
	if c.critics != nil {
		err := c.critics.Create(ctx, &rec)
		return rec, err
	}
	return call[showcase.Critic](c, ctx, http.MethodPost, "/api/critics", rec, "critic")
}

func (c *Client) UpdateCritic(ctx context.Context, id int, fields store.Fields) (showcase.Critic, error) {
	if c.critics != nil {
		rec, err := c.critics.Update(ctx, id, fields)
		if err != nil {
			return showcase.Critic{}, err
		}
		return *rec, nil
	}
	return call[showcase.Critic](c, ctx, http.MethodPut, "/api/critics/"+strconv.Itoa(id), fields, "critic")
}

func (c *Client) DeleteCritic(ctx context.Context, id int) error {
	if c.critics != nil {
		_, err := c.critics.Delete(ctx, id)
		return err
	}
	_, err := c.do(ctx, http.MethodDelete, "/api/critics/"+strconv.Itoa(id), nil)
	return err
}

func (c *Client) Collections(ctx context.Context) ([]showcase.Collection, error) {
	if c.collections != nil {
		return c.collections.List(ctx, nil)
	}
	return call[[]showcase.Collection](c, ctx, http.MethodGet, "/api/collections", nil, "collections")
}

// Collection resolves a collection by its public slug.
func (c *Client) Collection(ctx context.Context, slug string) (showcase.Collection, error) {
	recs, err := c.Collections(ctx)
	if err != nil {
		return showcase.Collection{}, err
	}
	for _, rec := range recs {
		if rec.Slug == slug {
			return rec, nil
		}
	}
	return showcase.Collection{}, errors.New("Collection not found")
}

func (c *Client) CreateCollection(ctx context.Context, rec showcase.Collection) (showcase.Collection, error) {
	if c.collections != nil {
		err := c.collections.Create(ctx, &rec)
		return rec, err
	}
	return call[showcase.Collection](c, ctx, http.MethodPost, "/api/collections", rec, "collection")
}

func (c *Client) UpdateCollection(ctx context.Context, id int, fields store.Fields) (showcase.Collection, error) {
	if c.collections != nil {
		rec, err := c.collections.Update(ctx, id, fields)
		if err != nil {
			return showcase.Collection{}, err
		}
		return *rec, nil
	}
	return call[showcase.Collection](c, ctx, http.MethodPut, "/api/collections/"+strconv.Itoa(id), fields, "collection")
}

func (c *Client) DeleteCollection(ctx context.Context, id int) error {
	if c.collections != nil {
		_, err := c.collections.Delete(ctx, id)
		return err
	}
	_, err := c.do(ctx, http.MethodDelete, "/api/collections/"+strconv.Itoa(id), nil)
	return err
}

// Subscribe adds email to the newsletter list; repeats resolve to the
// existing record on both paths.
func (c *Client) Subscribe(ctx context.Context, email string) (newsletter.Subscriber, error) {
	if c.subscribers != nil {
		existing, err := c.subscribers.List(ctx, store.Filter{"email": email})
		if err != nil {
			return newsletter.Subscriber{}, err
		}
		if len(existing) > 0 {
			return existing[0], nil
		}
		rec := newsletter.Subscriber{Email: email, SubscribedAt: time.Now().UTC()}
		err = c.subscribers.Create(ctx, &rec)
		return rec, err
	}
	return call[newsletter.Subscriber](c, ctx, http.MethodPost, "/api/newsletter", map[string]string{"email": email}, "subscriber")
}
