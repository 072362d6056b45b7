package aws

import (
	"context"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/route53"
	r53types "github.com/aws/aws-sdk-go-v2/service/route53/types"
	"github.com/rs/zerolog/log"

	"github.com/grimm26/awsdesc/pkg/resource"
)

// resolveRoute53 decides whether a DNS-shaped name is a hosted zone, a
// record in one of the account's zones, or nothing. A nil descriptor with
// a nil error means no match.
//
// The full zone list is paginated; a name exactly equal to a zone's name
// classifies as the zone itself. Otherwise every zone whose name is a
// suffix of the input is searched for a record set with that exact name,
// in zone listing order, stopping at the first hit. A matched record is
// embedded in the descriptor so describing it later needs no further
// call.
func (i *Inspector) resolveRoute53(ctx context.Context, name string) (*resource.Descriptor, error) {
	fqdn := name
	if !strings.HasSuffix(fqdn, ".") {
		fqdn += "."
	}

	type zoneRef struct {
		id   string
		name string
	}
	var candidates []zoneRef

	paginator := route53.NewListHostedZonesPaginator(i.route53, &route53.ListHostedZonesInput{})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("list hosted zones: %w", err)
		}
		for _, zone := range page.HostedZones {
			zoneName := aws.ToString(zone.Name)
			if !strings.HasSuffix(fqdn, zoneName) {
				continue
			}
			zoneID := strings.TrimPrefix(aws.ToString(zone.Id), "/hostedzone/")
			if zoneName == fqdn {
				log.Debug().Str("zone_id", zoneID).Msg("name is a hosted zone")
				return &resource.Descriptor{Kind: resource.KindRoute53, Sub: resource.SubHostedZone, Name: zoneID}, nil
			}
			candidates = append(candidates, zoneRef{id: zoneID, name: zoneName})
		}
	}

	for _, zone := range candidates {
		log.Debug().Str("zone", zone.name).Str("record", name).Msg("checking zone for record")
		rec, err := i.findRecord(ctx, zone.id, fqdn)
		if err != nil {
			return nil, err
		}
		if rec != nil {
			return &resource.Descriptor{
				Kind: resource.KindRoute53,
				Sub:  resource.SubRecord,
				Name: name,
				Data: *rec,
			}, nil
		}
	}

	return nil, nil
}

// findRecord scans a zone's record sets for one whose name equals fqdn.
// ListResourceRecordSets has no SDK paginator, so the truncation markers
// are followed by hand.
func (i *Inspector) findRecord(ctx context.Context, zoneID, fqdn string) (*r53types.ResourceRecordSet, error) {
	input := &route53.ListResourceRecordSetsInput{HostedZoneId: aws.String(zoneID)}
	for {
		out, err := i.route53.ListResourceRecordSets(ctx, input)
		if err != nil {
			return nil, fmt.Errorf("list record sets in zone %s: %w", zoneID, err)
		}
		for _, rs := range out.ResourceRecordSets {
			if aws.ToString(rs.Name) == fqdn {
				return &rs, nil
			}
		}
		if !out.IsTruncated {
			return nil, nil
		}
		input.StartRecordName = out.NextRecordName
		input.StartRecordType = out.NextRecordType
		input.StartRecordIdentifier = out.NextRecordIdentifier
	}
}

// describeHostedZone fetches the zone's full detail record.
func (i *Inspector) describeHostedZone(ctx context.Context, zoneID string) (any, error) {
	out, err := i.route53.GetHostedZone(ctx, &route53.GetHostedZoneInput{Id: aws.String(zoneID)})
	if err != nil {
		return nil, err
	}
	return out.HostedZone, nil
}
