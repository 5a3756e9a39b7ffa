package mailer

import (
	"fmt"
	"strconv"

	gomail "gopkg.in/gomail.v2"

	"karate_coaching_backend/internals/configs"
)

// Email transaksional via SMTP submission. Kegagalan kirim DIKEMBALIKAN
// ke handler, bukan ditelan — caller yang memutuskan status responsnya.

func dialer() (*gomail.Dialer, error) {
	if configs.SMTPHost == "" {
		return nil, fmt.Errorf("SMTP belum dikonfigurasi")
	}
	port, err := strconv.Atoi(configs.SMTPPort)
	if err != nil {
		return nil, fmt.Errorf("SMTP_PORT tidak valid: %w", err)
	}
	d := gomail.NewDialer(configs.SMTPHost, port, configs.SMTPUser, configs.SMTPPassword)
	d.SSL = port == 465
	return d, nil
}

func send(to, subject, body string) error {
	d, err := dialer()
	if err != nil {
		return err
	}
	m := gomail.NewMessage()
	m.SetHeader("From", configs.SMTPUser)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", body)
	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("kirim email ke %s gagal: %w", to, err)
	}
	return nil
}

// SendRegistrationEmail mengirim kredensial login setelah registrasi.
func SendRegistrationEmail(toEmail, password string) error {
	body := fmt.Sprintf(`Здравствуйте!

Ваш аккаунт на сайте https://karate-coaching.ru был успешно создан.
Ваши данные для входа:

Логин: %s
Пароль: %s
`, toEmail, password)
	return send(toEmail, "Добро пожаловать в Karate Coaching!", body)
}

// SendResetPasswordEmail mengirim kode 6 digit untuk reset password.
func SendResetPasswordEmail(toEmail, code string) error {
	body := fmt.Sprintf(`Здравствуйте!

Вы запросили смену пароля на сайте https://karate-coaching.ru
Ваш код для смены пароля: %s

P.S. Если вы получили это сообщение по ошибке, просто удалите его.
`, code)
	return send(toEmail, "Смена пароля на сайте Karate Coaching!", body)
}
