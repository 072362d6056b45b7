package aws

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	ec2types "github.com/aws/aws-sdk-go-v2/service/ec2/types"
	"github.com/rs/zerolog/log"

	"github.com/grimm26/awsdesc/pkg/resource"
)

// describeEC2 dispatches on the EC2 sub-type. The full flag only affects
// instances: the abbreviated instance view keeps a fixed attribute
// allow-list, every other sub-type always returns the whole record.
func (i *Inspector) describeEC2(ctx context.Context, d resource.Descriptor, full bool) (any, error) {
	switch d.Sub {
	case resource.SubInstance:
		return i.describeInstance(ctx, d.Name, full)
	case resource.SubSubnet:
		return i.describeSubnet(ctx, d.Name)
	case resource.SubVPC:
		return i.describeVPC(ctx, d.Name)
	case resource.SubVolume:
		return i.describeVolume(ctx, d.Name)
	case resource.SubSnapshot:
		return i.describeSnapshot(ctx, d.Name)
	default:
		return nil, ErrUnsupportedResource
	}
}

func (i *Inspector) describeInstance(ctx context.Context, id string, full bool) (any, error) {
	log.Debug().Str("instance_id", id).Msg("querying ec2 instance")
	out, err := i.ec2.DescribeInstances(ctx, &ec2.DescribeInstancesInput{
		InstanceIds: []string{id},
	})
	if err != nil {
		return nil, err
	}
	if len(out.Reservations) == 0 || len(out.Reservations[0].Instances) == 0 {
		return nil, ErrNotFound
	}
	inst := out.Reservations[0].Instances[0]
	if full {
		return inst, nil
	}
	return abbreviateInstance(inst), nil
}

// abbreviateInstance filters an instance record down to the fixed
// allow-list {InstanceType, PrivateIpAddress, SecurityGroups, SubnetId,
// VpcId}. Attributes absent from the record stay absent from the result.
func abbreviateInstance(inst ec2types.Instance) map[string]any {
	data := map[string]any{}
	if inst.InstanceType != "" {
		data["InstanceType"] = string(inst.InstanceType)
	}
	if inst.PrivateIpAddress != nil {
		data["PrivateIpAddress"] = aws.ToString(inst.PrivateIpAddress)
	}
	if inst.SecurityGroups != nil {
		data["SecurityGroups"] = inst.SecurityGroups
	}
	if inst.SubnetId != nil {
		data["SubnetId"] = aws.ToString(inst.SubnetId)
	}
	if inst.VpcId != nil {
		data["VpcId"] = aws.ToString(inst.VpcId)
	}
	return data
}

func (i *Inspector) describeSubnet(ctx context.Context, id string) (any, error) {
	log.Debug().Str("subnet_id", id).Msg("querying subnet")
	out, err := i.ec2.DescribeSubnets(ctx, &ec2.DescribeSubnetsInput{
		SubnetIds: []string{id},
	})
	if err != nil {
		return nil, err
	}
	if len(out.Subnets) == 0 {
		return nil, ErrNotFound
	}
	return out.Subnets[0], nil
}

func (i *Inspector) describeVPC(ctx context.Context, id string) (any, error) {
	log.Debug().Str("vpc_id", id).Msg("querying vpc")
	out, err := i.ec2.DescribeVpcs(ctx, &ec2.DescribeVpcsInput{
		VpcIds: []string{id},
	})
	if err != nil {
		return nil, err
	}
	if len(out.Vpcs) == 0 {
		return nil, ErrNotFound
	}
	return out.Vpcs[0], nil
}

func (i *Inspector) describeVolume(ctx context.Context, id string) (any, error) {
	log.Debug().Str("volume_id", id).Msg("querying ebs volume")
	out, err := i.ec2.DescribeVolumes(ctx, &ec2.DescribeVolumesInput{
		VolumeIds: []string{id},
	})
	if err != nil {
		return nil, err
	}
	if len(out.Volumes) == 0 {
		return nil, ErrNotFound
	}
	return out.Volumes[0], nil
}

func (i *Inspector) describeSnapshot(ctx context.Context, id string) (any, error) {
	log.Debug().Str("snapshot_id", id).Msg("querying ebs snapshot")
	out, err := i.ec2.DescribeSnapshots(ctx, &ec2.DescribeSnapshotsInput{
		SnapshotIds: []string{id},
	})
	if err != nil {
		return nil, err
	}
	if len(out.Snapshots) == 0 {
		return nil, ErrNotFound
	}
	return out.Snapshots[0], nil
}
