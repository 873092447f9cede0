package ethernet

import "golang-ethernetd/internal/port"

// Maintain checks the DHCP lease once and republishes the address set after a renewal or rebind.
//
// It must be called periodically by the application; nothing here runs on a timer.
// Without a lease negotiator (no DHCP bring-up yet) it returns LeaseCheckNone and
// touches nothing. Failed renewals are reported but not retried here: the
// negotiator tries again on a later call.
func (m *Manager) Maintain() port.LeaseCheck {
	if m.negotiator == nil {
		return port.LeaseCheckNone
	}

	rc := m.negotiator.CheckLease()
	switch {
	case rc.Republish():
		m.publishLease()
		m.logger.WithFields(map[string]interface{}{
			"status": rc.String(),
			"ip":     m.negotiator.GetLocalIP().String(),
		}).Info("Lease addresses republished")
	case rc.IsError():
		m.logger.WithField("status", rc.String()).Warn("Lease check failed")
	}
	return rc
}
