// Package messaging provides a broker-agnostic API for publishing and
// consuming messages over NATS, NSQ, Kafka or Google Pub/Sub.
//
// Use cases depend on Publisher and Consumer only; the driver is picked from
// configuration through NewFromDriver.
package messaging
