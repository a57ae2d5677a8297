package goquery_test

import (
	"testing"

	"github.com/fwojciec/lauds/goquery"
	"github.com/stretchr/testify/require"
)

const morningPrayerHTML = `<!DOCTYPE html>
<html>
<head><title>iBreviary</title><script>var x = "PSALMODY";</script></head>
<body>
<div id="menu"><a href="#">Readings</a> <a href="#">INTERCESSIONS</a></div>
<div id="contenuto"><p>
<span class="rubrica">HYMN</span><br>Tune: Lauds<br>Text: Traditional<br><br>
<span class="rubrica">PSALMODY</span><br>
<span class="rubrica">Ant. 1</span> My soul is thirsting for you, O Lord my God.<br><br>
<span class="rubrica">Psalm 63:2-9<br>A soul thirsting for God</span><br><br>
<em>Whoever has left the darkness of sin, yearns for God.</em><br><br>
O God, you are my God, for you I long;<br>for you my soul is thirsting.<br>My body pines for you<br>like a dry, weary land without water.<br><br>
So I gaze on you in the sanctuary<br>to see your strength and your glory.<br><br>
For your love is better than life,<br>my lips will speak your praise.<br><br>
Glory to the Father, and to the Son,<br>and to the Holy Spirit.<br><br>
<span class="rubrica">Ant.</span> My soul is thirsting for you, O Lord my God.<br><br>
<span class="rubrica">Psalm Prayer</span><br>Father, creator, we thirst for you.<br><br>
<span class="rubrica">Ant. 2</span> Let the heavens rejoice in the Lord.<br><br>
<span class="rubrica">Canticle: Daniel 3:57-88, 56<br>Let all creatures praise the Lord</span><br><br>
(Revelation 19:5)<br><br>
Bless the Lord, all you works of the Lord, praise and exalt him above all forever; angels of the Lord, bless the Lord, you heavens, bless the Lord, all you waters above the heavens, bless the Lord.<br><br>
All you hosts of the Lord, bless the Lord;<br>sun and moon, bless the Lord.<br><br>
Let us bless the Father, and the Son, and the Holy Spirit;<br>let us praise and exalt him above all forever.<br><br>
<span class="rubrica">Glory to the Father is not said.</span><br><br>
<span class="rubrica">Ant.</span> Let the heavens rejoice in the Lord.<br><br>
<span class="rubrica">Ant. 3</span> Praise the Lord from the heavens.<br><br>
<span class="rubrica">Psalm 148<br>Praise of the Lord, Creator of all</span><br><br>
Praise the Lord from the heavens,<br>praise him in the heights.<br><br>
Praise him, all his angels,<br>praise him, all his host.<br><br>
Glory to the Father, and to the Son,<br>and to the Holy Spirit.<br><br>
<span class="rubrica">Ant.</span> Praise the Lord from the heavens.<br><br>
<span class="rubrica">READING</span><br>Romans 13:11b-12<br>It is the hour now for you to awake from sleep.<br><br>
<span class="rubrica">RESPONSORY</span><br>The just are the friends of God.<br>— The just are the friends of God.<br>God himself is their reward.<br>— They live with him for ever.<br>Glory be.<br>— The just are the friends of God, They live with him for ever.<br><br>
<span class="rubrica">GOSPEL CANTICLE</span><br><span class="rubrica">Ant.</span> Blessed be the Lord, for he has visited his people.<br>
<span class="rubrica">Canticle of Zechariah</span><br>Blessed be the Lord, the God of Israel.<br><br>
<span class="rubrica">INTERCESSIONS</span><br>Christ is the shepherd of his people; let us pray:<br><em>Nourish your people, Lord.</em><br><br>
You chose your apostles to be shepherds of your flock,<br><span class="rubrica">—</span> keep us faithful to their teaching.<br><em>Nourish your people, Lord.</em><br><br>
You sent your Spirit upon the Church at Pentecost,<br><span class="rubrica">—</span> renew us in holiness.<br><br>
<span class="rubrica">THE LORD'S PRAYER</span><br>Our Father...<br><br>
<span class="rubrica">CONCLUDING PRAYER</span><br>Lord God,<br>you gave us Saint Martin.<br>— Amen.<br>
</p></div>
</body>
</html>`

const readingsHTML = `<!DOCTYPE html>
<html>
<body>
<div id="contenuto">
<p><span class="titolo">First Reading</span> <span class="citazione">Wis 1:1-7</span></p>
<p>A reading from the Book of Wisdom<br><br>Love justice, you who judge the earth; think of the LORD in goodness, and seek him in integrity of heart. For he is found by those who test him not.<br><br><strong>The word of the Lord.</strong></p>
<hr>
<p><span class="titolo">Responsorial Psalm</span> <span class="citazione">Ps 139:1b-3, 4-6</span></p>
<p>R. :</p>
<p><span class="rubrica">℟.</span> (24b) Guide me, Lord, along the everlasting way.</p>
<p>O LORD, you have probed me and you know me;<br>you know when I sit and when I stand;<br>you understand my thoughts from afar.<br><span class="rubrica">℟.</span> Guide me, Lord, along the everlasting way.</p>
<p>My journeys and my rest you scrutinize,<br>with all my ways you are familiar.<br><span class="rubrica">℟.</span> Guide me, Lord, along the everlasting way.</p>
<hr>
<p><span class="titolo">Acclamation before the Gospel</span> <span class="citazione">Phil 2:15d, 16a</span></p>
<p><span class="rubrica">℟.</span> <strong>Alleluia, alleluia.</strong><br>Shine like lights in the world<br>as you hold on to the word of life.<br><span class="rubrica">℟.</span> <strong>Alleluia, alleluia.</strong></p>
<p><span class="titolo">Gospel</span> <span class="citazione">Lk 17:1-6</span></p>
<p>Jesus said to his disciples, "Things that cause sin will inevitably occur."</p>
<p>✠ <strong>A reading from the holy Gospel according to Luke</strong><br><br>Jesus said to his disciples,<br>"Things that cause sin will inevitably occur,<br>but woe to the one through whom they occur."<br><span class="rubrica">At the end of the Gospel, the Deacon, or the Priest, acclaims:</span><br><strong>The Gospel of the Lord.</strong></p>
</div>
</body>
</html>`

func newDocument(t *testing.T, html string) *goquery.Document {
	t.Helper()

	doc, err := goquery.NewDocument(html)
	require.NoError(t, err)
	return doc
}
