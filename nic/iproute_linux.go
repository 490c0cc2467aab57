package nic

import (
	"fmt"
	"os/exec"
)

// Shell helpers wrapping the iproute2 tooling, the same commands a person
// would type to bring the TAP device up by hand.

// SetLinkUp lets the system start the interface.
func SetLinkUp(name string) (err error) {
	// ip link set <device_name> up
	out, cmdErr := exec.Command("ip", "link", "set", name, "up").CombinedOutput()
	if cmdErr != nil {
		err = fmt.Errorf("%v:%v", cmdErr, string(out))
		return
	}
	return
}

// AddRoute adds a route for cidr through the interface.
func AddRoute(name, cidr string) (err error) {
	// ip route add 192.168.1.0/24 dev tap0
	out, cmdErr := exec.Command("ip", "route", "add", cidr, "dev", name).CombinedOutput()
	if cmdErr != nil {
		err = fmt.Errorf("%v:%v", cmdErr, string(out))
		return
	}
	return
}

// AddAddr assigns the host side address of the interface.
func AddAddr(name, ip string) (err error) {
	// ip addr add 192.168.1.1 dev tap0
	out, cmdErr := exec.Command("ip", "addr", "add", ip, "dev", name).CombinedOutput()
	if cmdErr != nil {
		err = fmt.Errorf("%v:%v", cmdErr, string(out))
		return
	}
	return
}
