// Command button-monitor polls a GPIO push-button, debounces it, and
// publishes press/release events to MQTT.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	buttondebounce "github.com/MDGarcia1985/buttonDebounce"
	"github.com/MDGarcia1985/buttonDebounce/internal/gpio"
	"github.com/MDGarcia1985/buttonDebounce/internal/mqtt"
	"github.com/MDGarcia1985/buttonDebounce/internal/status"
	"github.com/MDGarcia1985/buttonDebounce/internal/web"
)

func main() {
	def := buttondebounce.DefaultConfig()

	poll := flag.Duration("poll", 5*time.Millisecond, "GPIO polling interval (the debounce tick)")
	engine := flag.String("engine", "integrator", "Debounce engine: integrator, consecutive, or edgegated")
	broker := flag.String("broker", "tcp://192.168.1.200:1883", "MQTT broker address")
	heartbeat := flag.Duration("heartbeat", 15*time.Minute, "Heartbeat interval (0 to disable)")
	pin := flag.Int("pin", gpio.DefaultPin, "BCM pin number for the button")
	activeLow := flag.Bool("active-low", true, "Button pulls the pin low when pressed")
	printState := flag.Bool("print-state", false, "Print current state and exit")
	httpAddr := flag.String("http", ":80", "HTTP status address (empty to disable)")

	integMax := flag.Uint("integ-max", uint(def.IntegMax), "Integrator: accumulator ceiling")
	integOn := flag.Uint("integ-on", uint(def.IntegOn), "Integrator: press threshold")
	integOff := flag.Uint("integ-off", uint(def.IntegOff), "Integrator: release threshold")
	consecN := flag.Uint("consec-n", uint(def.ConsecN), "Consecutive/edgegated: required run length (1-8)")
	edgeThreshold := flag.Uint("edge-threshold", uint(def.EdgeThreshold), "Edgegated: edges in window to flag chatter")
	unstableTimeout := flag.Uint("unstable-timeout", uint(def.UnstableTimeout), "Edgegated: chatter ticks before recenter")
	bounceConfirm := flag.Uint("bounce-confirm", uint(def.BounceConfirm), "Edgegated: chatter ticks before gating")

	flag.Parse()

	cfg := buttondebounce.Config{
		IntegMax:        uint8(*integMax),
		IntegOn:         uint8(*integOn),
		IntegOff:        uint8(*integOff),
		ConsecN:         uint8(*consecN),
		EdgeThreshold:   uint8(*edgeThreshold),
		UnstableTimeout: uint8(*unstableTimeout),
		BounceConfirm:   uint8(*bounceConfirm),
	}

	if err := run(*poll, *engine, cfg, *broker, *heartbeat, *pin, *activeLow, *printState, *httpAddr); err != nil {
		log.Fatalf("fatal: %v", err)
	}
}

func run(poll time.Duration, engineName string, cfg buttondebounce.Config, broker string, heartbeat time.Duration, pin int, activeLow, printState bool, httpAddr string) error {
	eng, err := buildEngine(engineName, cfg)
	if err != nil {
		return err
	}
	btn := buttondebounce.New(eng)

	// Initialize GPIO
	reader, err := gpio.NewRealReader(pin)
	if err != nil {
		return fmt.Errorf("init gpio: %w", err)
	}
	defer reader.Close()

	// Print state mode
	if printState {
		high, err := reader.Read()
		if err != nil {
			return fmt.Errorf("read gpio: %w", err)
		}
		fmt.Printf("Button: %s (pin %s)\n", levelString(rawDown(high, activeLow)), pinString(high))
		return nil
	}

	// A button held across a restart should not fire a spurious press:
	// baseline the debouncer to the current pin state.
	if high, err := reader.Read(); err == nil {
		btn.Reset(rawDown(high, activeLow))
	}

	// Initialize MQTT
	publisher, err := mqtt.NewRealPublisher(broker)
	if err != nil {
		return fmt.Errorf("init mqtt: %w", err)
	}
	defer publisher.Close()

	// Initialize status tracker (before STARTUP so snapshot is available)
	tracker := status.NewTracker(time.Now(), status.Config{
		PollMs:      poll.Milliseconds(),
		HeartbeatMs: heartbeat.Milliseconds(),
		Engine:      engineName,
		Pin:         pin,
		ActiveLow:   activeLow,
		Broker:      broker,
		HTTPAddr:    httpAddr,
	})
	if net := readNetworkInfo(piHelperEnvFile); net != nil {
		tracker.SetNetwork(net)
	}

	// Publish startup event with full status snapshot
	snap := tracker.Snapshot()
	startupEvent := mqtt.SystemEvent{
		Timestamp:  snap.Now,
		Event:      "STARTUP",
		Retained:   true,
		RawPayload: status.FormatStatusEvent(snap, "STARTUP", ""),
	}
	if err := publisher.PublishSystem(startupEvent); err != nil {
		log.Printf("failed to publish startup event: %v", err)
	} else {
		log.Printf("published startup event")
	}

	// Start HTTP status server
	if httpAddr != "" {
		srv := web.New(httpAddr, tracker)
		go func() {
			if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				log.Printf("http server error: %v", err)
			}
		}()
		defer srv.Shutdown(context.Background())
		log.Printf("http status server listening on %s", httpAddr)
	}

	log.Printf("started: poll=%v engine=%s pin=%d active-low=%v broker=%s heartbeat=%v",
		poll, engineName, pin, activeLow, broker, heartbeat)

	ticker := time.NewTicker(poll)
	defer ticker.Stop()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	return runLoop(reader, publisher, publisher, tracker, btn, activeLow, heartbeat, time.Now, ticker.C, sigCh)
}

func runLoop(reader gpio.Reader, publisher mqtt.Publisher, mqttStatus mqtt.ConnectionStatus, tracker *status.Tracker, btn *buttondebounce.Debouncer, activeLow bool, heartbeat time.Duration, now func() time.Time, tick <-chan time.Time, sig <-chan os.Signal) error {
	var counts status.EventCounts
	lastHeartbeat := now()

	for {
		select {
		case s := <-sig:
			log.Printf("received %v, shutting down", s)
			signalName := "UNKNOWN"
			if s == syscall.SIGINT {
				signalName = "SIGINT"
			} else if s == syscall.SIGTERM {
				signalName = "SIGTERM"
			}
			event := mqtt.SystemEvent{
				Timestamp: now(),
				Event:     "SHUTDOWN",
				Reason:    signalName,
				Retained:  true,
			}
			if tracker != nil {
				if mqttStatus != nil {
					tracker.SetMQTTConnected(mqttStatus.IsConnected())
				}
				snap := tracker.Snapshot()
				event.RawPayload = status.FormatStatusEvent(snap, "SHUTDOWN", signalName)
			}
			if err := publisher.PublishSystem(event); err != nil {
				log.Printf("failed to publish shutdown event: %v", err)
			} else {
				log.Printf("published shutdown event")
			}
			return nil

		case <-tick:
			t := now()
			high, err := reader.Read()
			if err != nil {
				log.Printf("gpio read error: %v", err)
				continue
			}

			if activeLow {
				btn.UpdateActiveLow(high)
			} else {
				btn.UpdateActiveHigh(high)
			}

			if btn.Pressed() || btn.Released() {
				event := mqtt.Event{
					Timestamp: t,
					Type:      mqtt.EventReleased,
					Down:      btn.Down(),
					History:   btn.History(),
				}
				if btn.Pressed() {
					event.Type = mqtt.EventPressed
					counts.Pressed++
				} else {
					counts.Released++
				}
				log.Printf("event: %s (history=%08b)", event.Type, event.History)
				if err := publisher.Publish(event); err != nil {
					log.Printf("publish error: %v", err)
					// Don't crash on publish failure
				}
			}

			// Check for heartbeat
			if heartbeat > 0 && t.Sub(lastHeartbeat) >= heartbeat {
				lastHeartbeat = t
				log.Printf("heartbeat: pressed=%d released=%d", counts.Pressed, counts.Released)

				hbEvent := mqtt.SystemEvent{
					Timestamp: t,
					Event:     "HEARTBEAT",
				}
				if tracker != nil {
					if mqttStatus != nil {
						tracker.SetMQTTConnected(mqttStatus.IsConnected())
					}
					// Refresh network info for heartbeat
					if net := readNetworkInfo(piHelperEnvFile); net != nil {
						tracker.SetNetwork(net)
					}
					tracker.Update(btn.Down(), btn.History(), counts)
					snap := tracker.Snapshot()
					hbEvent.RawPayload = status.FormatStatusEvent(snap, "HEARTBEAT", "")
				}
				if err := publisher.PublishSystem(hbEvent); err != nil {
					log.Printf("heartbeat publish error: %v", err)
				}
			}

			// Update status tracker for HTTP consumers
			if tracker != nil {
				tracker.Update(btn.Down(), btn.History(), counts)
				if mqttStatus != nil {
					tracker.SetMQTTConnected(mqttStatus.IsConnected())
				}
			}
		}
	}
}

// buildEngine maps the -engine flag to a core library engine.
func buildEngine(name string, cfg buttondebounce.Config) (buttondebounce.Engine, error) {
	switch name {
	case "integrator":
		return buttondebounce.NewIntegrator(cfg), nil
	case "consecutive":
		return buttondebounce.NewConsecutive(cfg), nil
	case "edgegated":
		return buttondebounce.NewEdgeGated(cfg), nil
	}
	return nil, fmt.Errorf("unknown engine %q (want integrator, consecutive, or edgegated)", name)
}

// piHelperEnvFile is written by the pi-helper sidecar with current
// network state.
const piHelperEnvFile = "/run/pi-helper.env"

// pi-helper env var names.
const (
	envNetworkType       = "NETWORK_TYPE"
	envNetworkIP         = "NETWORK_IP"
	envNetworkStatus     = "NETWORK_STATUS"
	envNetworkGateway    = "NETWORK_GATEWAY"
	envNetworkWifiStatus = "NETWORK_WIFI_STATUS"
	envNetworkWifiSSID   = "NETWORK_WIFI_SSID"
)

// readNetworkInfo parses the pi-helper env file. Returns nil if the file
// is missing or carries no status, so the daemon also runs fine without
// the sidecar.
func readNetworkInfo(path string) *status.NetworkInfo {
	env, err := godotenv.Read(path)
	if err != nil {
		return nil
	}
	if env[envNetworkStatus] == "" {
		return nil
	}
	return &status.NetworkInfo{
		Type:       env[envNetworkType],
		IP:         env[envNetworkIP],
		Status:     env[envNetworkStatus],
		Gateway:    env[envNetworkGateway],
		WifiStatus: env[envNetworkWifiStatus],
		SSID:       env[envNetworkWifiSSID],
	}
}

// rawDown translates a raw pin level to the logical pressed convention.
func rawDown(pinHigh, activeLow bool) bool {
	if activeLow {
		return !pinHigh
	}
	return pinHigh
}

func levelString(down bool) string {
	if down {
		return "DOWN"
	}
	return "UP"
}

func pinString(high bool) string {
	if high {
		return "high"
	}
	return "low"
}
