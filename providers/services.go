package providers

import (
	"errors"
	"os/exec"

	"oledpanel/container"
)

// SystemdUnit returns a source reporting whether a systemd unit is
// active. An inactive unit is a valid false reading; only a failure to
// ask (systemctl missing, permission trouble) is a source error.
func SystemdUnit(unit string) container.StatusSource {
	return func() (bool, error) {
		err := exec.Command("systemctl", "is-active", "--quiet", unit).Run()
		if err == nil {
			return true, nil
		}
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return false, nil
		}
		return false, err
	}
}

// DockerDaemon returns a source reporting whether the Docker daemon
// unit is active.
func DockerDaemon() container.StatusSource {
	return SystemdUnit("docker")
}

// SSHDaemon returns a source reporting whether the OpenSSH server unit
// is active.
func SSHDaemon() container.StatusSource {
	return SystemdUnit("ssh")
}
