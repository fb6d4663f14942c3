// Package netaddr guesses the address other devices on the LAN can reach this machine at.
package netaddr

import (
	"net"
)

const Loopback = "127.0.0.1"

type DialFunc func(network, address string) (net.Conn, error)

// Address is the outcome of a resolution. Fallback is set when IP is the loopback
// substitute rather than a discovered interface address.
type Address struct {
	IP       string
	Fallback bool
}

// Resolver picks the source address the kernel would route towards Target. A UDP
// "connection" sends no packets, it only selects a route.
type Resolver struct {
	Target string
	Dial   DialFunc
}

func NewResolver(target string) *Resolver {
	return &Resolver{Target: target, Dial: net.Dial}
}

// Resolve never fails; any problem yields the loopback address with Fallback set.
func (r *Resolver) Resolve() Address {
	dial := r.Dial
	if dial == nil {
		dial = net.Dial
	}

	conn, err := dial("udp", r.Target)
	if err != nil {
		return fallback()
	}
	defer conn.Close()

	local := conn.LocalAddr()
	if local == nil {
		return fallback()
	}

	if udp, ok := local.(*net.UDPAddr); ok && udp.IP != nil && !udp.IP.IsUnspecified() {
		return Address{IP: udp.IP.String()}
	}

	host, _, err := net.SplitHostPort(local.String())
	if err != nil || net.ParseIP(host) == nil {
		return fallback()
	}
	return Address{IP: host}
}

func fallback() Address {
	return Address{IP: Loopback, Fallback: true}
}
