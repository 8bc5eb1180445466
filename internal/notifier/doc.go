// Package notifier publishes a rendered schedule listing to a notification
// channel.
//
// SNSNotifier publishes to an AWS SNS topic (subscribers receive it by e-mail,
// SMS or any other SNS protocol). DryRunNotifier prints what would be
// published without contacting AWS.
package notifier
