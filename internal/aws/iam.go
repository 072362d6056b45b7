package aws

import (
	"context"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/iam"
	"github.com/rs/zerolog/log"

	"github.com/grimm26/awsdesc/pkg/resource"
)

// describeIAM handles iam ARNs, which classify as passthrough with the
// resource part intact ("role/admin", "user/bob", possibly with a path
// like "role/service/admin"). IAM lookups want the bare name, so only the
// last path segment is used.
func (i *Inspector) describeIAM(ctx context.Context, d resource.Descriptor) (any, error) {
	kind, rest, ok := strings.Cut(d.Name, "/")
	if !ok {
		return nil, ErrUnsupportedResource
	}
	name := rest
	if idx := strings.LastIndex(rest, "/"); idx >= 0 {
		name = rest[idx+1:]
	}

	switch kind {
	case "role":
		log.Debug().Str("role", name).Msg("querying iam role")
		out, err := i.iam.GetRole(ctx, &iam.GetRoleInput{RoleName: aws.String(name)})
		if err != nil {
			return nil, err
		}
		return out.Role, nil
	case "user":
		log.Debug().Str("user", name).Msg("querying iam user")
		out, err := i.iam.GetUser(ctx, &iam.GetUserInput{UserName: aws.String(name)})
		if err != nil {
			return nil, err
		}
		return out.User, nil
	default:
		return nil, ErrUnsupportedResource
	}
}
