package catalog

import (
	"context"
	"log"

	"github.com/kiwiflowai-ai/totalcare-website/database"
	"github.com/kiwiflowai-ai/totalcare-website/models"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

// ProductWatcher follows update events for a single product while its detail
// view is open. It owns a change stream on the products collection filtered
// to that one id; Close (or cancelling the watch context) releases it on
// every exit path.
type ProductWatcher struct {
	updates chan bson.M
	cancel  context.CancelFunc
}

// WatchProduct opens the subscription. Each value on Updates is the set of
// changed fields from one update event, keyed by stored column name.
func WatchProduct(ctx context.Context, id string) (*ProductWatcher, error) {
	col, err := database.OpenCollection("products")
	if err != nil {
		return nil, err
	}

	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.D{
			{Key: "operationType", Value: "update"},
			{Key: "documentKey._id", Value: id},
		}}},
	}
	stream, err := col.Watch(ctx, pipeline)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithCancel(ctx)
	w := &ProductWatcher{
		updates: make(chan bson.M, 1),
		cancel:  cancel,
	}
	go w.run(ctx, stream)
	return w, nil
}

// Updates delivers changed-field sets. The channel closes once the watcher
// shuts down.
func (w *ProductWatcher) Updates() <-chan bson.M {
	return w.updates
}

// Close tears the subscription down. Safe to call more than once.
func (w *ProductWatcher) Close() {
	w.cancel()
}

func (w *ProductWatcher) run(ctx context.Context, stream *mongo.ChangeStream) {
	defer close(w.updates)
	defer stream.Close(context.Background())

	for stream.Next(ctx) {
		var ev struct {
			UpdateDescription struct {
				UpdatedFields bson.M `bson:"updatedFields"`
			} `bson:"updateDescription"`
		}
		if err := stream.Decode(&ev); err != nil {
			log.Println("catalog: undecodable change event:", err)
			continue
		}
		if len(ev.UpdateDescription.UpdatedFields) == 0 {
			continue
		}
		select {
		case w.updates <- ev.UpdateDescription.UpdatedFields:
		case <-ctx.Done():
			return
		}
	}
	if err := stream.Err(); err != nil && ctx.Err() == nil {
		log.Println("catalog: change stream closed:", err)
	}
}

// ApplyPatch merges one update event into an in-memory product. The image
// columns get the same treatment reads do: the cover image is replaced
// verbatim, product_images is re-run through the normalization rule. Every
// other known column is a shallow field replace; unknown columns are
// ignored. The id is identity and never patched.
func ApplyPatch(p *models.Product, fields bson.M) {
	for key, value := range fields {
		switch key {
		case "image":
			if s, ok := value.(string); ok {
				p.Image = s
			}
		case "product_images":
			p.ProductImages = NormalizeImages(value)
		case "name":
			if s, ok := value.(string); ok {
				p.Name = s
			}
		case "brand":
			if s, ok := value.(string); ok {
				p.Brand = s
			}
		case "description":
			if s, ok := value.(string); ok {
				p.Description = s
			}
		case "model":
			if s, ok := value.(string); ok {
				p.Model = s
			}
		case "price":
			if s, ok := value.(string); ok {
				p.Price = s
			}
		case "promotions":
			if s, ok := value.(string); ok {
				p.Promotions = normalizePromotions(s)
			}
		case "cooling_capacity":
			if s, ok := value.(string); ok {
				p.CoolingCapacity = s
			}
		case "heating_capacity":
			if s, ok := value.(string); ok {
				p.HeatingCapacity = s
			}
		case "series":
			if s, ok := value.(string); ok {
				p.Series = s
			}
		case "has_wifi":
			if b, ok := value.(bool); ok {
				p.HasWifi = b
			}
		}
	}
}
