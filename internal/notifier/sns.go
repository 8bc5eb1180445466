package notifier

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sns"
)

// snsPublisher is the subset of the SNS client used for publishing
type snsPublisher interface {
	Publish(ctx context.Context, params *sns.PublishInput, optFns ...func(*sns.Options)) (*sns.PublishOutput, error)
}

// SNSNotifier publishes messages to an SNS topic
type SNSNotifier struct {
	client   snsPublisher
	topicARN string
}

// NewSNSNotifier creates an SNS notifier for topicARN using the default AWS
// credential chain (environment, shared config, instance role).
func NewSNSNotifier(ctx context.Context, topicARN string) (*SNSNotifier, error) {
	if topicARN == "" {
		return nil, fmt.Errorf("missing SNS topic ARN")
	}

	cfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading AWS config: %w", err)
	}

	return &SNSNotifier{
		client:   sns.NewFromConfig(cfg),
		topicARN: topicARN,
	}, nil
}

// Notify publishes message to the topic
func (n *SNSNotifier) Notify(ctx context.Context, subject, message string) error {
	input := &sns.PublishInput{
		TopicArn: aws.String(n.topicARN),
		Message:  aws.String(message),
	}
	if subject != "" {
		input.Subject = aws.String(subject)
	}

	if _, err := n.client.Publish(ctx, input); err != nil {
		return fmt.Errorf("publishing to %s: %w", n.topicARN, err)
	}
	return nil
}
