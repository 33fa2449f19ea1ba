package wire

import (
	"fmt"
	"io"

	"artstudio-booking/internal/checkout"
	"artstudio-booking/internal/gateway"
	"artstudio-booking/pkg/utils"

	"go.uber.org/zap"
)

// newNotifier picks the confirmation channel. "none" returns a nil notifier,
// which turns confirmations off.
func newNotifier(config utils.NotifyConfig, log *zap.Logger) (checkout.Notifier, io.Closer, error) {
	switch config.Driver {
	case "", "none":
		log.Info("Confirmation notifications disabled")
		return nil, nil, nil

	case "http":
		if config.EmailAPIURL == "" {
			return nil, nil, fmt.Errorf("NOTIFY_DRIVER=http requires EMAIL_API_URL")
		}
		return gateway.NewEmailClient(config.EmailAPIURL, config.EmailPath, config.Timeout, nil), nil, nil

	case "kafka":
		if len(config.KafkaBrokers) == 0 {
			return nil, nil, fmt.Errorf("NOTIFY_DRIVER=kafka requires KAFKA_BROKERS")
		}
		n := gateway.NewKafkaNotifier(config.KafkaBrokers, config.KafkaTopic)
		return n, n, nil

	default:
		return nil, nil, fmt.Errorf("unknown NOTIFY_DRIVER %q", config.Driver)
	}
}
