package readstore

import (
	"fmt"

	"github.com/jinzhu/copier"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Documents and views share field names; ObjectIDs are rendered as hex.
var copyOpts = copier.Option{
	Converters: []copier.TypeConverter{
		{
			SrcType: primitive.ObjectID{},
			DstType: copier.String,
			Fn: func(src any) (any, error) {
				id, ok := src.(primitive.ObjectID)
				if !ok {
					return nil, fmt.Errorf("expected ObjectID, got %T", src)
				}
				return id.Hex(), nil
			},
		},
	},
}

func toView[V any, D any](doc *D) (*V, error) {
	var view V
	if err := copier.CopyWithOption(&view, doc, copyOpts); err != nil {
		return nil, err
	}
	return &view, nil
}

func toViews[V any, D any](docs []D) ([]*V, error) {
	views := make([]*V, 0, len(docs))
	for i := range docs {
		v, err := toView[V](&docs[i])
		if err != nil {
			return nil, err
		}
		views = append(views, v)
	}
	return views, nil
}
