// Package services file: services/metrics.go
package services

import (
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/cloudwatch"

	"hackathon-hub/logger"
)

// MetricsPublisher counts workflow outcomes. Publishing is
// fire-and-forget; failures are logged, never surfaced.
type MetricsPublisher interface {
	RegistrationCompleted(hackathonTitle string)
	TeamCreated(hackathonTitle string)
}

// NoopMetrics discards all metrics. Used in development and tests.
type NoopMetrics struct{}

func (NoopMetrics) RegistrationCompleted(string) {}
func (NoopMetrics) TeamCreated(string)           {}

// Namespace for all HackathonHub metrics
var metricsNamespace = "HackathonHub"

// CloudWatchMetrics publishes counters to CloudWatch, one client
// reused for all calls.
type CloudWatchMetrics struct {
	client *cloudwatch.CloudWatch
}

// NewCloudWatchMetrics creates a publisher using the ambient AWS
// credentials and region.
func NewCloudWatchMetrics(region string) *CloudWatchMetrics {
	sess := session.Must(session.NewSession(&aws.Config{Region: aws.String(region)}))
	return &CloudWatchMetrics{client: cloudwatch.New(sess)}
}

// RegistrationCompleted counts one successful registration.
func (m *CloudWatchMetrics) RegistrationCompleted(hackathonTitle string) {
	m.putMetric("RegistrationCompleted", 1, hackathonTitle)
}

// TeamCreated counts one team created through the register form.
func (m *CloudWatchMetrics) TeamCreated(hackathonTitle string) {
	m.putMetric("TeamCreated", 1, hackathonTitle)
}

// -----------------------------------------------------------
// internal helper function to package up CloudWatch calls
// -----------------------------------------------------------
func (m *CloudWatchMetrics) putMetric(metricName string, value float64, hackathonTitle string) {
	_, err := m.client.PutMetricData(&cloudwatch.PutMetricDataInput{
		Namespace: aws.String(metricsNamespace),
		MetricData: []*cloudwatch.MetricDatum{
			{
				MetricName: aws.String(metricName),
				Dimensions: []*cloudwatch.Dimension{
					{
						Name:  aws.String("Hackathon"),
						Value: aws.String(hackathonTitle),
					},
				},
				Timestamp: aws.Time(time.Now()),
				Value:     aws.Float64(value),
				Unit:      aws.String("Count"),
			},
		},
	})
	if err != nil {
		logger.Error.Printf("[putMetric] CloudWatch metric failed (%s): %v", metricName, err)
	}
}
