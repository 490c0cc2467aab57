// Command jnetd answers ARP requests, pings and UDP echoes on a Linux TAP
// device for a statically configured MAC and IPv4 address.
//
// Bring it up and ping it:
//
//	# jnetd -config jnetd.toml &
//	# ip addr add 192.168.1.1/24 dev tap0
//	# ip link set tap0 up
//	# ping -c2 192.168.1.33
package main

import (
	"flag"
	stdnet "net"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/op/go-logging"
	"github.com/soypat/net"

	"github.com/isgasho/jnet"
	"github.com/isgasho/jnet/nic"
)

var log = logging.MustGetLogger("jnetd")

var format = logging.MustStringFormatter(
	"%{color}%{time:15:04:05.000} %{module} %{level:.4s}%{color:reset} %{message}",
)

type config struct {
	// Interface is the TAP device to attach to; empty lets the kernel
	// pick a name.
	Interface string `toml:"interface"`
	MAC       string `toml:"mac"`
	IP        string `toml:"ip"`
	// CacheEntries bounds the resolution cache; 0 means the default.
	CacheEntries int `toml:"cache_entries"`
	// LinkUp runs `ip link set <dev> up` after attaching.
	LinkUp bool `toml:"link_up"`
}

func main() {
	configFile := flag.String("config", "jnetd.toml", "path to configuration file")
	flag.Parse()

	logging.SetBackend(logging.NewBackendFormatter(
		logging.NewLogBackend(os.Stderr, "", 0), format))

	cfg := config{
		Interface: "tap0",
		MAC:       "02:19:01:30:23:59",
		IP:        "192.168.1.33",
	}
	if _, err := toml.DecodeFile(*configFile, &cfg); err != nil && !os.IsNotExist(err) {
		log.Fatalf("could not read configuration: %v", err)
	}

	hw, err := stdnet.ParseMAC(cfg.MAC)
	if err != nil {
		log.Fatalf("bad mac %q: %v", cfg.MAC, err)
	}
	ipAddr := stdnet.ParseIP(cfg.IP).To4()
	if ipAddr == nil {
		log.Fatalf("bad ipv4 address %q", cfg.IP)
	}

	stack, err := jnet.NewStack(net.HardwareAddr(hw), net.IP(ipAddr), jnet.NewCache(cfg.CacheEntries), log)
	if err != nil {
		log.Fatalf("could not build stack: %v", err)
	}

	tap, err := nic.OpenTAP(cfg.Interface)
	if err != nil {
		log.Fatalf("could not open TAP device %q: %v", cfg.Interface, err)
	}
	defer tap.Close()
	if cfg.LinkUp {
		if err := nic.SetLinkUp(tap.Name()); err != nil {
			log.Fatalf("could not bring %s up: %v", tap.Name(), err)
		}
	}

	log.Infof("%s up, answering for %s (%s)", tap.Name(), cfg.IP, cfg.MAC)
	var replies uint
	err = jnet.ListenAndServe(tap, stack, func() { replies++ })
	// No recovery strategy for a failed driver in this minimal example.
	log.Fatalf("fatal I/O error after %d replies: %v", replies, err)
}
