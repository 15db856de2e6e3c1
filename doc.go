// The pirstatus motion status page
//
// A PIR motion sensor wired to a Raspberry Pi GPIO pin is polled, and the time
// of the last detected motion is served as a small web page, ready to be put
// behind a tunnel such as cloudflared.
//
// Features
//
// - Edge triggered detection, once per motion episode (or level triggered)
//
// - Web page, JSON endpoint and Prometheus metrics on one port
//
// - Optional mqtt events for each motion start/stop, plus a heartbeat
//
// - systemd readiness and watchdog notifications
//
// Packages
//
// - hal: GPIO access (periph.io) and a mock pin
//
// - motion: the record, edge detector and poller
//
// - services/sensor, services/status: the two services run by cmd/pirstatus
package pirstatus
