package aws

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/cloudwatch"
	cwtypes "github.com/aws/aws-sdk-go-v2/service/cloudwatch/types"
)

// Metrics wraps a CloudWatch client and a namespace.
type Metrics struct {
	CloudWatch CloudWatchAPI
	Namespace  string
}

// NewMetrics returns a Metrics publisher bound to a namespace.
func NewMetrics(cwClient CloudWatchAPI, namespace string) *Metrics {
	return &Metrics{
		CloudWatch: cwClient,
		Namespace:  namespace,
	}
}

// RecordDeployment publishes one completion datum plus a duration datum for a
// deployment run. dimensions map[string]string -> sent as metric dimensions;
// the outcome is carried as a Success dimension on both datums.
func (m *Metrics) RecordDeployment(ctx context.Context, success bool, elapsed time.Duration, dimensions map[string]string) error {
	now := time.Now().UTC()

	outcome := 0.0
	successValue := "false"
	if success {
		outcome = 1.0
		successValue = "true"
	}

	dims := []cwtypes.Dimension{
		{Name: awsString("Success"), Value: awsString(successValue)},
	}
	for k, v := range dimensions {
		dims = append(dims, cwtypes.Dimension{
			Name:  awsString(k),
			Value: awsString(v),
		})
	}

	input := &cloudwatch.PutMetricDataInput{
		Namespace: &m.Namespace,
		MetricData: []cwtypes.MetricDatum{
			{
				MetricName: awsString("DeploymentCompleted"),
				Value:      &outcome,
				Unit:       cwtypes.StandardUnitCount,
				Timestamp:  &now,
				Dimensions: dims,
			},
			{
				MetricName: awsString("DeploymentDuration"),
				Value:      awsFloat64(elapsed.Seconds()),
				Unit:       cwtypes.StandardUnitSeconds,
				Timestamp:  &now,
				Dimensions: dims,
			},
		},
	}

	_, err := m.CloudWatch.PutMetricData(ctx, input)
	if err != nil {
		return fmt.Errorf("put metric data: %w", err)
	}
	return nil
}

// helpers
func awsString(s string) *string    { return &s }
func awsFloat64(f float64) *float64 { return &f }
