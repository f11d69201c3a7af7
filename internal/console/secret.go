package console

import "strings"

// secretToken opens the secret menu from the main menu prompt.
const secretToken = "up up down down left right left right start"

// secretLinks maps secret menu tokens to the link they print.
var secretLinks = map[string]string{
	"1": "https://i.pinimg.com/originals/9c/03/d3/9c03d32309a7de8518b81dbbd386b9b7.jpg",
	"2": "https://encrypted-tbn0.gstatic.com/images?q=tbn:ANd9GcSF_VCu1qlbi_P8vx323dNQXv-g-XvJSykgMA&usqp=CAU",
	"3": "https://img.universitystudent.org/1/4/3280/i-love-deadlines-i-like-to-wave-at-them-as-they-pass-by-meme.jpg",
	"4": "https://www.memecreator.org/static/images/memes/5288749.jpg",
	"5": "https://www.youtube.com/playlist?list=PLiv4PqZ35v55aWLZty3sFtELk_Rpz14sv",
	"6": "https://www.youtube.com/watch?v=-N6cqF3bajc&list=PLiv4PqZ35v55VR3V9NQNKO6rLxfYjJ7fB&index=6",
}

// Secret menu control tokens.
const (
	secretReturn = "7"
	secretQuit   = "0"
)

func (c *Console) enterSecret() {
	c.printf("\n\nSecret Found\n\n")
	c.pause()
	c.secret = true
	c.logger.Debug("secret menu opened")
}

// secretStep shows the secret menu and handles one token. It never touches
// the catalog.
func (c *Console) secretStep() (bool, error) {
	c.println("`~~Secret Menu~~`")
	c.println()
	c.println("1. Meme 1 url")
	c.println("2. Meme 2 url")
	c.println("3. Meme 3 url")
	c.println("4. Meme 4 url")
	c.println("5. ICS 111 Playlist url")
	c.println("6. ICS 211 Playlist url")
	c.println("7. Return to normal menu")
	c.println("0. Shut down")

	line, err := c.readLine()
	if err != nil {
		return false, err
	}
	token := strings.TrimSpace(line)
	switch token {
	case secretReturn:
		c.secret = false
		return false, nil
	case secretQuit:
		return true, nil
	}
	if link, ok := secretLinks[token]; ok {
		c.printf("\n%s\n\n", link)
		return false, nil
	}
	c.printf("\nSorry, invalid secret menu input: %s\n\n", token)
	return false, nil
}
