package aws

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/rds"
	"github.com/rs/zerolog/log"

	"github.com/grimm26/awsdesc/pkg/resource"
)

// describeRDS dispatches on the sub-type component of an rds ARN
// (arn:aws:rds:...:db:name, :cluster:name, :snapshot:name).
func (i *Inspector) describeRDS(ctx context.Context, d resource.Descriptor) (any, error) {
	switch d.Sub {
	case "db":
		return i.describeDBInstance(ctx, d.Name)
	case "cluster":
		return i.describeDBCluster(ctx, d.Name)
	case "snapshot":
		return i.describeDBSnapshot(ctx, d.Name)
	default:
		return nil, ErrUnsupportedResource
	}
}

func (i *Inspector) describeDBInstance(ctx context.Context, id string) (any, error) {
	log.Debug().Str("db_instance", id).Msg("querying rds instance")
	out, err := i.rds.DescribeDBInstances(ctx, &rds.DescribeDBInstancesInput{
		DBInstanceIdentifier: aws.String(id),
	})
	if err != nil {
		return nil, err
	}
	if len(out.DBInstances) == 0 {
		return nil, ErrNotFound
	}
	return out.DBInstances[0], nil
}

func (i *Inspector) describeDBCluster(ctx context.Context, id string) (any, error) {
	log.Debug().Str("db_cluster", id).Msg("querying rds cluster")
	out, err := i.rds.DescribeDBClusters(ctx, &rds.DescribeDBClustersInput{
		DBClusterIdentifier: aws.String(id),
	})
	if err != nil {
		return nil, err
	}
	if len(out.DBClusters) == 0 {
		return nil, ErrNotFound
	}
	return out.DBClusters[0], nil
}

func (i *Inspector) describeDBSnapshot(ctx context.Context, id string) (any, error) {
	log.Debug().Str("db_snapshot", id).Msg("querying rds snapshot")
	out, err := i.rds.DescribeDBSnapshots(ctx, &rds.DescribeDBSnapshotsInput{
		DBSnapshotIdentifier: aws.String(id),
	})
	if err != nil {
		return nil, err
	}
	if len(out.DBSnapshots) == 0 {
		return nil, ErrNotFound
	}
	return out.DBSnapshots[0], nil
}
