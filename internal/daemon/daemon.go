package daemon

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"syscall"
)

// Daemon manages a detached sysglanced process through a pid file.
type Daemon struct {
	exePath    string
	configPath string
	pidFile    string
}

func New(exePath, configPath string) *Daemon {
	return &Daemon{
		exePath:    exePath,
		configPath: configPath,
		pidFile:    filepath.Join(os.TempDir(), "sysglance.pid"),
	}
}

func (d *Daemon) Start() error {
	if d.IsRunning() {
		return fmt.Errorf("daemon is already running")
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("failed to get home directory: %v", err)
	}

	logDir := filepath.Join(homeDir, ".sysglance")
	if err := os.MkdirAll(logDir, 0755); err != nil {
		return fmt.Errorf("failed to create log directory: %v", err)
	}

	logFile, err := os.OpenFile(
		filepath.Join(logDir, "sysglance.log"),
		os.O_APPEND|os.O_CREATE|os.O_WRONLY,
		0644,
	)
	if err != nil {
		return fmt.Errorf("failed to open log file: %v", err)
	}

	// The server binary lives next to the CLI binary.
	serverBinary := filepath.Join(filepath.Dir(d.exePath), "sysglanced")
	if _, err := os.Stat(serverBinary); os.IsNotExist(err) {
		return fmt.Errorf("server binary 'sysglanced' not found in %s", filepath.Dir(d.exePath))
	}

	cmd := exec.Command(serverBinary, "--config", d.configPath)

	// Detach from parent process
	cmd.SysProcAttr = &syscall.SysProcAttr{
		Setsid: true,
	}
	cmd.Stdout = logFile
	cmd.Stderr = logFile

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to start daemon: %v", err)
	}

	if err := os.WriteFile(d.pidFile, []byte(fmt.Sprintf("%d", cmd.Process.Pid)), 0644); err != nil {
		return fmt.Errorf("failed to write PID file: %v", err)
	}

	fmt.Printf("Daemon started (PID: %d)\n", cmd.Process.Pid)
	return nil
}

func (d *Daemon) Stop() error {
	pid, err := d.getPID()
	if err != nil {
		return fmt.Errorf("daemon is not running")
	}

	process, err := os.FindProcess(pid)
	if err != nil {
		return fmt.Errorf("failed to find process: %v", err)
	}

	if err := process.Signal(syscall.SIGTERM); err != nil {
		return fmt.Errorf("failed to stop daemon: %v", err)
	}

	if err := os.Remove(d.pidFile); err != nil {
		return err
	}
	fmt.Println("Daemon stopped")
	return nil
}

func (d *Daemon) Status() error {
	if !d.IsRunning() {
		fmt.Println("Daemon is not running")
		return nil
	}

	pid, _ := d.getPID()
	fmt.Printf("Daemon is running (PID: %d)\n", pid)
	return nil
}

func (d *Daemon) IsRunning() bool {
	pid, err := d.getPID()
	if err != nil {
		return false
	}

	process, err := os.FindProcess(pid)
	if err != nil {
		return false
	}

	return process.Signal(syscall.Signal(0)) == nil
}

func (d *Daemon) getPID() (int, error) {
	data, err := os.ReadFile(d.pidFile)
	if err != nil {
		return 0, err
	}

	var pid int
	if _, err := fmt.Sscanf(string(data), "%d", &pid); err != nil {
		return 0, err
	}

	return pid, nil
}
