package aws

import (
	"context"

	"github.com/grimm26/awsdesc/pkg/resource"
)

// Describe looks up the resource a descriptor names and returns the
// normalized result for rendering. Dispatch is purely on the descriptor's
// kind and sub-type; any failure comes back wrapped in a DescribeError.
//
// A Route 53 record descriptor already carries its payload from
// classification, so describing it performs no API call.
func (i *Inspector) Describe(ctx context.Context, d resource.Descriptor, full bool) (any, error) {
	data, err := i.describe(ctx, d, full)
	if err != nil {
		return nil, describeErr(d, err)
	}
	return data, nil
}

func (i *Inspector) describe(ctx context.Context, d resource.Descriptor, full bool) (any, error) {
	switch d.Kind {
	case resource.KindEC2:
		return i.describeEC2(ctx, d, full)
	case resource.KindS3:
		return i.describeS3(ctx, d)
	case resource.KindRDS:
		return i.describeRDS(ctx, d)
	case resource.KindRoute53:
		switch d.Sub {
		case resource.SubHostedZone:
			return i.describeHostedZone(ctx, d.Name)
		case resource.SubRecord:
			return d.Data, nil
		default:
			return nil, ErrUnsupportedResource
		}
	case resource.KindIAM:
		return i.describeIAM(ctx, d)
	default:
		return nil, ErrUnsupportedResource
	}
}
